package audio

import "fmt"

// Silent is a Backend that produces no sound. It remembers what it was asked
// to do, which is all the terminal frontend needs.
type Silent struct {
	Loaded  string
	Volume  float64
	Loops   bool
	Plays   int
	Sounds  []string
	Closed  bool
	playing bool

	// Known, when set, limits Load to these tracks.
	Known map[string]bool
}

// NewSilent returns a backend that accepts every built-in track.
func NewSilent() *Silent {
	known := make(map[string]bool, len(Tracks))
	for name := range Tracks {
		known[name] = true
	}
	return &Silent{Known: known}
}

func (s *Silent) Load(track string) error {
	if s.Known != nil && !s.Known[track] {
		return fmt.Errorf("audio: unknown track %q", track)
	}
	s.Loaded = track
	s.playing = false
	return nil
}

func (s *Silent) Play(loop bool) error {
	if s.Loaded == "" {
		return fmt.Errorf("audio: no track loaded")
	}
	s.playing = true
	s.Loops = loop
	s.Plays++
	return nil
}

func (s *Silent) Stop() { s.playing = false }
func (s *Silent) SetVolume(v float64) { s.Volume = v }
func (s *Silent) Playing() bool { return s.playing }

func (s *Silent) PlaySound(name string) error {
	s.Sounds = append(s.Sounds, name)
	return nil
}

func (s *Silent) Close() error {
	s.Closed = true
	s.playing = false
	return nil
}
