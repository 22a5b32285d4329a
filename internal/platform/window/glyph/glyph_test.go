package glyph

import "testing"

func TestLookupBlocks(t *testing.T) {
	tests := []struct {
		r     rune
		box   Box
		alpha float64
	}{
		{'█', Box{W: 1, H: 1}, 1},
		{'▀', Box{W: 1, H: 0.5}, 1},
		{'▄', Box{Y: 0.5, W: 1, H: 0.5}, 1},
		{'░', Box{W: 1, H: 1}, 0.25},
		{'▓', Box{W: 1, H: 1}, 0.75},
	}
	for _, tc := range tests {
		s, ok := Lookup(tc.r)
		if !ok {
			t.Fatalf("Lookup(%q) missing", tc.r)
		}
		if len(s.Boxes) != 1 || s.Boxes[0] != tc.box || s.Alpha != tc.alpha {
			t.Errorf("Lookup(%q) = %+v", tc.r, s)
		}
	}
}

func TestShapesStayInsideCell(t *testing.T) {
	const eps = 1e-9
	for r, s := range shapes {
		if len(s.Boxes) == 0 {
			t.Errorf("%q has no boxes", r)
		}
		for _, b := range s.Boxes {
			if b.W <= 0 || b.H <= 0 {
				t.Errorf("%q: empty box %+v", r, b)
			}
			if b.X < -eps || b.Y < -eps || b.X+b.W > 1+eps || b.Y+b.H > 1+eps {
				t.Errorf("%q: box %+v leaves the cell", r, b)
			}
		}
	}
}

func TestLookupText(t *testing.T) {
	for _, r := range "aZ0 {ò}" {
		if _, ok := Lookup(r); ok {
			t.Errorf("Lookup(%q) should use the font", r)
		}
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		in, expected rune
	}{
		{'▲', '^'},
		{'♣', '*'},
		{'↓', 'v'},
		{'a', 'a'},
		{'°', '°'},
	}
	for _, tc := range tests {
		if got := Fallback(tc.in); got != tc.expected {
			t.Errorf("Fallback(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
