package window

import (
	"bytes"
	"fmt"
	"io"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/goblin-arcade/internal/audio"
)

// Speaker is an audio.Backend that plays synthesized tracks through
// Ebitengine's audio context.
type Speaker struct {
	ctx    *ebaudio.Context
	player *ebaudio.Player
	track  string
	pcm    map[string][]byte // rendered tracks and sounds, by name
	volume float64
}

var (
	_ audio.Backend     = (*Speaker)(nil)
	_ audio.SoundPlayer = (*Speaker)(nil)
)

// NewSpeaker creates the process-wide audio context. Only one may exist.
func NewSpeaker() *Speaker {
	return &Speaker{
		ctx:    ebaudio.NewContext(audio.SampleRate),
		pcm:    make(map[string][]byte),
		volume: audio.DefaultVolume,
	}
}

func (s *Speaker) render(key string, t audio.Track) []byte {
	if b, ok := s.pcm[key]; ok {
		return b
	}
	b := audio.Render(t, audio.SampleRate)
	s.pcm[key] = b
	return b
}

// Load renders a built-in track and stops the current one.
func (s *Speaker) Load(track string) error {
	t, ok := audio.Tracks[track]
	if !ok {
		return fmt.Errorf("window: unknown track %q", track)
	}
	s.Stop()
	s.render("track:"+track, t)
	s.track = track
	return nil
}

// Play starts the loaded track from the beginning.
func (s *Speaker) Play(loop bool) error {
	if s.track == "" {
		return fmt.Errorf("window: no track loaded")
	}
	pcm := s.pcm["track:"+s.track]

	var src io.Reader = bytes.NewReader(pcm)
	if loop {
		src = ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}
	p, err := s.ctx.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("window: cannot create player: %w", err)
	}
	if s.player != nil {
		//nolint:errcheck // the old player is being replaced
		s.player.Close()
	}
	p.SetVolume(s.volume)
	p.Play()
	s.player = p
	return nil
}

func (s *Speaker) Stop() {
	if s.player != nil {
		s.player.Pause()
	}
}

func (s *Speaker) SetVolume(v float64) {
	s.volume = v
	if s.player != nil {
		s.player.SetVolume(v)
	}
}

func (s *Speaker) Playing() bool {
	return s.player != nil && s.player.IsPlaying()
}

// PlaySound mixes a one-shot effect over the music.
func (s *Speaker) PlaySound(name string) error {
	t, ok := audio.Sounds[name]
	if !ok {
		return fmt.Errorf("window: unknown sound %q", name)
	}
	p := s.ctx.NewPlayerFromBytes(s.render("sound:"+name, t))
	p.SetVolume(s.volume)
	p.Play()
	return nil
}

func (s *Speaker) Close() error {
	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	return err
}
