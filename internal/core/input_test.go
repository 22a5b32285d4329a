package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		frame    InputFrame
		expected int
	}{
		{"none", InputOf(), 0},
		{"left", InputOf(ActionLeft), -1},
		{"right", InputOf(ActionRight, ActionJump), 1},
		{"both cancel", InputOf(ActionLeft, ActionRight), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.frame.Horizontal(); got != tc.expected {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionPause.String() != "Pause" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
