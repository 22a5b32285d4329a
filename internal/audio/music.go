// Package audio manages background music and sound effects for the arcade.
// Games never touch audio directly: they emit core.Event values from Step and
// the platform forwards them to a Music manager.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// DefaultVolume is the volume a new Music manager starts with.
const DefaultVolume = 0.5

// Backend plays one looping track at a time.
type Backend interface {
	Load(track string) error
	Play(loop bool) error
	Stop()
	SetVolume(v float64)
	Playing() bool
	Close() error
}

// SoundPlayer is implemented by backends that can mix one-shot effects over the music.
type SoundPlayer interface {
	PlaySound(name string) error
}

// Music tracks which background track is active and forwards commands to a Backend.
// Backend failures are logged and otherwise ignored so a broken audio device
// never stops a game.
type Music struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
	current string
	volume  float64
	closed  bool
}

// NewMusic wraps a backend. A nil logger discards backend errors.
func NewMusic(b Backend, logger *log.Logger) *Music {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Music{backend: b, logger: logger, volume: DefaultVolume}
	b.SetVolume(m.volume)
	return m
}

// PlayBackground starts track on loop unless it is already playing.
func (m *Music) PlayBackground(track string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || track == "" {
		return
	}
	if m.backend.Playing() && m.current == track {
		return
	}
	if err := m.backend.Load(track); err != nil {
		m.logger.Warn("cannot load track", "track", track, "error", err)
		return
	}
	if err := m.backend.Play(true); err != nil {
		m.logger.Warn("cannot play track", "track", track, "error", err)
		return
	}
	m.current = track
}

// Stop halts the background track.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.backend.Stop()
	m.current = ""
}

// SetVolume sets the volume, clamped to [0, 1].
func (m *Music) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volume = core.ClampF(v, 0, 1)
	if !m.closed {
		m.backend.SetVolume(m.volume)
	}
}

// Volume returns the current volume.
func (m *Music) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// Current returns the track that is playing, or "" when stopped.
func (m *Music) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || !m.backend.Playing() {
		return ""
	}
	return m.current
}

// PlaySound plays a one-shot effect when the backend supports it.
func (m *Music) PlaySound(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, ok := m.backend.(SoundPlayer)
	if m.closed || !ok {
		return
	}
	if err := sp.PlaySound(name); err != nil {
		m.logger.Warn("cannot play sound", "sound", name, "error", err)
	}
}

// Handle carries out a game event.
func (m *Music) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventMusicPlay:
		m.PlayBackground(ev.Track)
	case core.EventMusicStop:
		m.Stop()
	case core.EventSound:
		m.PlaySound(ev.Track)
	}
}

// HandleAll carries out every event of a step in order.
func (m *Music) HandleAll(events []core.Event) {
	for _, ev := range events {
		m.Handle(ev)
	}
}

// Quit stops playback and releases the backend. Later calls are no-ops.
func (m *Music) Quit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.backend.Stop()
	if err := m.backend.Close(); err != nil {
		m.logger.Warn("cannot close audio backend", "error", err)
	}
	m.current = ""
}
