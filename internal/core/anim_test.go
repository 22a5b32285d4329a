package core

import "testing"

func TestAnimatorAdvancesEveryN(t *testing.T) {
	a := NewAnimator(3, 5)

	for i := 0; i < 4; i++ {
		a.Tick()
	}
	if a.Index() != 0 {
		t.Fatalf("index after 4 ticks = %d, expected 0", a.Index())
	}
	a.Tick()
	if a.Index() != 1 {
		t.Fatalf("index after 5 ticks = %d, expected 1", a.Index())
	}

	// 10 more ticks wraps 1 -> 2 -> 0
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if a.Index() != 0 {
		t.Errorf("index should wrap to 0, got %d", a.Index())
	}
}

func TestAnimatorEmptyAndReset(t *testing.T) {
	a := NewAnimator(0, 1)
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if a.Index() != 0 {
		t.Errorf("empty animator index = %d, expected 0", a.Index())
	}

	b := NewAnimator(4, 1)
	b.Tick()
	b.Tick()
	b.SetFrames(2)
	if b.Index() != 0 {
		t.Errorf("SetFrames should reset, got index %d", b.Index())
	}
}
