package audio

import (
	"errors"
	"testing"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

func TestPlayBackgroundOnlyRestartsOnChange(t *testing.T) {
	b := NewSilent()
	m := NewMusic(b, nil)

	m.PlayBackground("menu")
	m.PlayBackground("menu")
	if b.Plays != 1 {
		t.Errorf("same track while playing should not restart, plays = %d", b.Plays)
	}
	if !b.Loops || m.Current() != "menu" {
		t.Errorf("menu should loop, current = %q", m.Current())
	}

	m.PlayBackground("nature")
	if b.Plays != 2 || b.Loaded != "nature" {
		t.Errorf("different track should load and play, loaded = %q plays = %d", b.Loaded, b.Plays)
	}

	m.Stop()
	if b.Playing() || m.Current() != "" {
		t.Error("Stop should halt playback")
	}

	m.PlayBackground("nature")
	if b.Plays != 3 {
		t.Errorf("same track after stop should play again, plays = %d", b.Plays)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	b := NewSilent()
	m := NewMusic(b, nil)

	if b.Volume != DefaultVolume {
		t.Errorf("initial backend volume = %f, expected %f", b.Volume, DefaultVolume)
	}

	tests := []struct {
		in, expected float64
	}{
		{0.25, 0.25},
		{1.5, 1.0},
		{-2, 0.0},
	}
	for _, tc := range tests {
		m.SetVolume(tc.in)
		if m.Volume() != tc.expected || b.Volume != tc.expected {
			t.Errorf("SetVolume(%f) = %f/%f, expected %f", tc.in, m.Volume(), b.Volume, tc.expected)
		}
	}
}

func TestUnknownTrackIsNotFatal(t *testing.T) {
	b := NewSilent()
	m := NewMusic(b, nil)

	m.PlayBackground("missing")
	if b.Playing() || m.Current() != "" {
		t.Error("unknown track should leave music stopped")
	}
}

func TestHandleEvents(t *testing.T) {
	b := NewSilent()
	m := NewMusic(b, nil)

	m.HandleAll([]core.Event{
		{Kind: core.EventMusicPlay, Track: "menu"},
		{Kind: core.EventSound, Track: "jump"},
	})
	if m.Current() != "menu" || len(b.Sounds) != 1 || b.Sounds[0] != "jump" {
		t.Errorf("play events not handled: current %q sounds %v", m.Current(), b.Sounds)
	}

	m.Handle(core.Event{Kind: core.EventMusicStop})
	if b.Playing() {
		t.Error("stop event should stop the music")
	}
}

type failingBackend struct {
	Silent
}

func (f *failingBackend) Play(bool) error { return errors.New("device busy") }
func (f *failingBackend) Close() error { return errors.New("already closed") }

func TestQuitClosesOnce(t *testing.T) {
	b := NewSilent()
	m := NewMusic(b, nil)
	m.PlayBackground("menu")

	m.Quit()
	m.Quit()
	if !b.Closed || b.Playing() {
		t.Error("Quit should stop and close the backend")
	}

	m.PlayBackground("nature")
	if b.Plays != 1 {
		t.Error("no playback after Quit")
	}

	fb := &failingBackend{}
	fm := NewMusic(fb, nil)
	fm.PlayBackground("menu")
	if fm.Current() != "" {
		t.Error("failed Play should not mark the track current")
	}
	fm.Quit()
}
