package audio

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// SampleRate is the PCM rate produced by Render.
const SampleRate = 44100

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Note is a pitch held for a number of beats. Freq 0 is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// Track is a short note sequence rendered to PCM and looped by the backend.
type Track struct {
	BPM   float64
	Wave  Wave
	Gain  float64 // 0..1 before the master volume
	Notes []Note
}

// note frequencies used by the built-in tracks
const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	g3 = 196.00
	a3 = 220.00
)

// Tracks are the looping background tracks.
var Tracks = map[string]Track{
	"menu": {
		BPM: 96, Wave: WaveTriangle, Gain: 0.35,
		Notes: []Note{
			{c4, 1}, {e4, 1}, {g4, 1}, {e4, 1},
			{a3, 1}, {c4, 1}, {e4, 1}, {c4, 1},
			{d4, 1}, {g4, 1}, {a4, 1}, {g4, 1},
			{g3, 2}, {0, 2},
		},
	},
	"nature": {
		BPM: 60, Wave: WaveSine, Gain: 0.3,
		Notes: []Note{
			{e4, 2}, {g4, 2}, {a4, 4},
			{g4, 2}, {e4, 2}, {d4, 4},
			{c4, 2}, {d4, 2}, {e4, 4},
			{0, 4},
		},
	},
	"battle": {
		BPM: 140, Wave: WaveSquare, Gain: 0.2,
		Notes: []Note{
			{a3, 0.5}, {a3, 0.5}, {c4, 0.5}, {a3, 0.5},
			{d4, 0.5}, {a3, 0.5}, {e4, 0.5}, {d4, 0.5},
		},
	},
}

// Sounds are one-shot effects.
var Sounds = map[string]Track{
	"jump":  {BPM: 600, Wave: WaveSquare, Gain: 0.25, Notes: []Note{{c5, 1}, {e5, 1}}},
	"shoot": {BPM: 900, Wave: WaveSquare, Gain: 0.2, Notes: []Note{{e5, 1}, {d5, 1}, {c5, 1}}},
	"hit":   {BPM: 300, Wave: WaveNoise, Gain: 0.3, Notes: []Note{{a3, 1}}},
	"clear": {BPM: 480, Wave: WaveTriangle, Gain: 0.3, Notes: []Note{{c5, 1}, {e5, 1}, {g4 * 2, 2}}},
}

// Duration returns the length of the track in samples.
func (t Track) Duration(sampleRate int) int {
	if t.BPM <= 0 {
		return 0
	}
	total := 0
	for _, n := range t.Notes {
		total += noteSamples(n, t.BPM, sampleRate)
	}
	return total
}

func noteSamples(n Note, bpm float64, sampleRate int) int {
	return int(n.Beats * 60 / bpm * float64(sampleRate))
}

// Render synthesizes the track as 16-bit little-endian stereo PCM.
// Each note gets a short attack and release so loops do not click.
func Render(t Track, sampleRate int) []byte {
	n := t.Duration(sampleRate)
	out := make([]byte, 0, n*4)
	gain := core.ClampF(t.Gain, 0, 1)

	var noise uint32 = 0x1234567
	for _, note := range t.Notes {
		count := noteSamples(note, t.BPM, sampleRate)
		ramp := sampleRate / 200
		for i := 0; i < count; i++ {
			var v float64
			if note.Freq > 0 {
				phase := math.Mod(float64(i)*note.Freq/float64(sampleRate), 1)
				v = oscillate(t.Wave, phase, &noise)
			}
			v *= envelope(i, count, ramp) * gain
			s := int16(v * math.MaxInt16)
			out = binary.LittleEndian.AppendUint16(out, uint16(s))
			out = binary.LittleEndian.AppendUint16(out, uint16(s))
		}
	}
	return out
}

func oscillate(w Wave, phase float64, noise *uint32) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveNoise:
		// xorshift keeps the output deterministic
		*noise ^= *noise << 13
		*noise ^= *noise >> 17
		*noise ^= *noise << 5
		return float64(*noise)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func envelope(i, count, ramp int) float64 {
	if ramp <= 0 || count <= 0 {
		return 1
	}
	switch {
	case i < ramp:
		return float64(i) / float64(ramp)
	case i >= count-ramp:
		return float64(count-i) / float64(ramp)
	default:
		return 1
	}
}
