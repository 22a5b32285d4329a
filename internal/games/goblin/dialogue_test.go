package goblin

import (
	"strings"
	"testing"
)

func TestDialogueAdvance(t *testing.T) {
	d := NewDialogue(map[int][]string{2: {"a", "b", "c"}})
	d.SetDialogue(2)
	d.Start()

	var seen []string
	for d.Active() {
		seen = append(seen, d.Current())
		d.Advance()
	}
	if got := strings.Join(seen, ""); got != "abc" {
		t.Errorf("lines = %q, expected abc", got)
	}
	if d.LastCompleted != 2 {
		t.Errorf("LastCompleted = %d, expected 2", d.LastCompleted)
	}
	if d.Index() != 0 || d.Current() != "" {
		t.Error("finished dialogue should rewind and show nothing")
	}
	if d.Advance() {
		t.Error("Advance on a finished dialogue should return false")
	}
}

func TestDialogueUnknownKey(t *testing.T) {
	d := NewDialogue(nil)
	d.SetDialogue(42)
	if d.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", d.Len())
	}
	d.Start()
	if d.Active() {
		t.Error("empty dialogue should not be active")
	}
	if d.LastCompleted != 42 {
		t.Errorf("LastCompleted = %d, expected 42", d.LastCompleted)
	}

	d.Clear()
	if d.Key() != 0 || d.LastCompleted != 0 {
		t.Error("Clear should drop the key and LastCompleted")
	}
}

func TestTutorialSteps(t *testing.T) {
	tut := NewTutorial(3)

	steps := []struct {
		dir      int
		jumped   bool
		expected TutorialStep
	}{
		{1, false, StepWalkLeft}, // wrong direction
		{-1, false, StepWalkRight},
		{0, true, StepWalkRight}, // jump before walking right
		{1, false, StepJump},
		{0, true, StepReady},
		{0, false, StepReady},
		{0, false, StepReady},
		{0, false, StepDone},
	}
	for i, s := range steps {
		done := tut.Update(s.dir, s.jumped)
		if tut.Step() != s.expected {
			t.Fatalf("update %d: step = %d, expected %d", i, tut.Step(), s.expected)
		}
		if done != (s.expected == StepDone) {
			t.Fatalf("update %d: done = %v", i, done)
		}
	}
	if tut.Text() != "" {
		t.Errorf("finished tutorial text = %q, expected empty", tut.Text())
	}

	tut.Reset()
	if tut.Step() != StepWalkLeft || tut.Done() {
		t.Error("Reset should return to the first step")
	}
}

func TestStoryEmbedded(t *testing.T) {
	story, err := LoadStory()
	if err != nil {
		t.Fatalf("LoadStory: %v", err)
	}
	for _, key := range []int{1, 2, 3, EpilogueKey, DefeatKey} {
		if len(story.Dialogue[key]) == 0 {
			t.Errorf("dialogue %d is empty", key)
		}
	}
	if story.Dialogue[DefeatKey][0] != "You've been defeated!" {
		t.Errorf("defeat line = %q", story.Dialogue[DefeatKey][0])
	}
	if story.Footer == "" || len(story.Credits) == 0 {
		t.Error("credits should be present")
	}
}

func TestCreditNameList(t *testing.T) {
	c := Credit{Role: "Game Artists", Names: "Arish Evangelista, Jennifer Abino,  MJ Royol ,"}
	names := c.NameList()
	expected := []string{"Arish Evangelista", "Jennifer Abino", "MJ Royol"}
	if len(names) != len(expected) {
		t.Fatalf("NameList() = %q, expected %q", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("name %d = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestParseStoryError(t *testing.T) {
	if _, err := ParseStory([]byte("dialogue: [")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
	s, err := ParseStory([]byte("footer: hi"))
	if err != nil {
		t.Fatalf("ParseStory: %v", err)
	}
	if s.Dialogue == nil {
		t.Error("Dialogue map should be initialized")
	}
}

func TestMenuWraps(t *testing.T) {
	var m Menu
	m.Move(-1)
	if m.Selected() != ButtonQuit {
		t.Errorf("Selected() = %s, expected Quit", m.Selected().Label())
	}
	m.Move(2)
	if m.Selected() != ButtonCredits {
		t.Errorf("Selected() = %s, expected Credits", m.Selected().Label())
	}
	if MenuButton(9).Label() != "" {
		t.Error("unknown button should have no label")
	}
}
