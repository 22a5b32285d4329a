package core

// Animator cycles through a fixed number of frames, advancing every Every ticks.
type Animator struct {
	Frames int // number of frames in the current set
	Every  int // ticks per frame

	index   int
	counter int
}

// NewAnimator creates an animator for a set of frames.
func NewAnimator(frames, every int) Animator {
	return Animator{Frames: frames, Every: every}
}

// Tick advances the counter by one and moves to the next frame when it
// reaches Every. Empty frame sets stay at index 0.
func (a *Animator) Tick() {
	if a.Frames <= 0 {
		a.index = 0
		return
	}
	a.counter++
	if a.counter >= Max(a.Every, 1) {
		a.counter = 0
		a.index = (a.index + 1) % a.Frames
	}
}

// Reset returns to the first frame and zeroes the counter.
func (a *Animator) Reset() {
	a.index = 0
	a.counter = 0
}

// SetFrames switches to a frame set of a different length and resets.
func (a *Animator) SetFrames(frames int) {
	a.Frames = frames
	a.Reset()
}

// Index returns the current frame index.
func (a Animator) Index() int {
	return a.index
}
