package invasion

import (
	"math"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Alien is one member of the fleet.
type Alien struct {
	X, Y float64
}

// Bullet is a shot fired by the ship.
type Bullet struct {
	X, Y float64
}

// Fleet is the grid of aliens moving together.
type Fleet struct {
	Aliens []Alien
	Dir    float64 // +1 right, -1 left
	w, h   int     // alien size
}

// NewFleet fills rows and columns of aliens, one alien size apart, leaving
// room for the ship at the bottom.
func NewFleet(screenW, screenH, alienW, alienH int) *Fleet {
	f := &Fleet{Dir: 1, w: alienW, h: alienH}
	if alienW <= 0 || alienH <= 0 {
		return f
	}
	for y := alienH; y < screenH-3*alienH; y += 2 * alienH {
		for x := alienW; x < screenW-2*alienW; x += 2 * alienW {
			f.Aliens = append(f.Aliens, Alien{X: float64(x), Y: float64(y)})
		}
	}
	return f
}

// Rect returns the bounding box of alien i.
func (f *Fleet) Rect(i int) core.Rect {
	return f.rectOf(f.Aliens[i])
}

func (f *Fleet) rectOf(a Alien) core.Rect {
	return core.NewRect(int(math.Round(a.X)), int(math.Round(a.Y)), f.w, f.h)
}

// AtEdge reports whether any alien touches the left or right screen edge.
func (f *Fleet) AtEdge(screenW int) bool {
	for _, a := range f.Aliens {
		if a.X+float64(f.w) >= float64(screenW) || a.X <= 0 {
			return true
		}
	}
	return false
}

// Update drops and reverses the fleet at an edge, then moves it sideways.
func (f *Fleet) Update(screenW int, speed float64, drop int) {
	if f.AtEdge(screenW) {
		for i := range f.Aliens {
			f.Aliens[i].Y += float64(drop)
		}
		f.Dir = -f.Dir
	}
	for i := range f.Aliens {
		f.Aliens[i].X += speed * f.Dir
	}
}

// ReachedBottom reports whether any alien touches the bottom of the screen.
func (f *Fleet) ReachedBottom(screenH int) bool {
	for _, a := range f.Aliens {
		if a.Y+float64(f.h) >= float64(screenH) {
			return true
		}
	}
	return false
}

// RemoveHits deletes every alien overlapping r and returns how many went.
func (f *Fleet) RemoveHits(r core.Rect) int {
	kept := f.Aliens[:0]
	for _, a := range f.Aliens {
		if f.rectOf(a).Intersects(r) {
			continue
		}
		kept = append(kept, a)
	}
	n := len(f.Aliens) - len(kept)
	f.Aliens = kept
	return n
}

// Empty reports whether every alien was shot down.
func (f *Fleet) Empty() bool {
	return len(f.Aliens) == 0
}
