package goblin

// TutorialStep is one instruction of the level 1 tutorial.
type TutorialStep int

const (
	StepWalkLeft TutorialStep = iota
	StepWalkRight
	StepJump
	StepReady
	StepDone
)

var stepText = map[TutorialStep]string{
	StepWalkLeft:  "Hold LEFT or A to walk left",
	StepWalkRight: "Hold RIGHT or D to walk right",
	StepJump:      "Press SPACE to jump",
	StepReady:     "Ready? Reach the right edge and dodge the slime!",
}

// Tutorial tracks the player's progress through the movement lessons.
type Tutorial struct {
	step       TutorialStep
	readyTicks int
	remaining  int
}

// NewTutorial creates a tutorial whose ready banner holds for readyTicks.
func NewTutorial(readyTicks int) *Tutorial {
	t := &Tutorial{readyTicks: readyTicks}
	t.Reset()
	return t
}

// Reset returns to the first step.
func (t *Tutorial) Reset() {
	t.step = StepWalkLeft
	t.remaining = t.readyTicks
}

// Update records one tick of player input. It returns true once the
// tutorial is complete.
func (t *Tutorial) Update(dir int, jumped bool) bool {
	switch t.step {
	case StepWalkLeft:
		if dir < 0 {
			t.step = StepWalkRight
		}
	case StepWalkRight:
		if dir > 0 {
			t.step = StepJump
		}
	case StepJump:
		if jumped {
			t.step = StepReady
			t.remaining = t.readyTicks
		}
	case StepReady:
		t.remaining--
		if t.remaining <= 0 {
			t.step = StepDone
		}
	}
	return t.step == StepDone
}

// Step returns the current step.
func (t *Tutorial) Step() TutorialStep { return t.step }

// Done reports whether every step is complete.
func (t *Tutorial) Done() bool { return t.step == StepDone }

// Text returns the instruction for the current step.
func (t *Tutorial) Text() string { return stepText[t.step] }
