package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestRenderLength(t *testing.T) {
	tr := Track{BPM: 120, Wave: WaveSine, Gain: 1, Notes: []Note{{440, 1}, {0, 1}}}

	// two beats at 120 BPM is one second
	if d := tr.Duration(1000); d != 1000 {
		t.Fatalf("Duration = %d, expected 1000", d)
	}
	pcm := Render(tr, 1000)
	if len(pcm) != 4000 {
		t.Fatalf("len(pcm) = %d, expected 4000 (stereo 16-bit)", len(pcm))
	}

	// the rest is silent
	rest := pcm[2000:]
	if !bytes.Equal(rest, make([]byte, len(rest))) {
		t.Error("rest note should render silence")
	}

	// left and right channels match
	for i := 0; i+3 < len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for name, tr := range Sounds {
		if !bytes.Equal(Render(tr, 8000), Render(tr, 8000)) {
			t.Errorf("sound %q renders differently on each call", name)
		}
	}
}

func TestBuiltinTracksRender(t *testing.T) {
	for name, tr := range Tracks {
		if len(Render(tr, 8000)) == 0 {
			t.Errorf("track %q is empty", name)
		}
	}
	if (Track{}).Duration(SampleRate) != 0 {
		t.Error("zero BPM track should have no duration")
	}
}
