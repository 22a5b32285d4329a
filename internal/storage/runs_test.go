package storage

import "testing"

func TestSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "goblin", Score: 100, Level: 2, Outcome: OutcomeLost, Ticks: 900},
		{GameID: "goblin", SessionID: "abc", Score: 1100, Level: 3, Outcome: OutcomeWon, Ticks: 4000},
		{GameID: "shield", Score: 4, Level: 0, Outcome: OutcomeQuit, Ticks: 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	got, err := store.RecentRuns("goblin", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 goblin runs, got %d", len(got))
	}
	// newest first
	if got[0].Outcome != OutcomeWon || got[0].SessionID != "abc" || got[0].Level != 3 || got[0].Ticks != 4000 {
		t.Errorf("newest run = %+v", got[0])
	}
	if got[1].Outcome != OutcomeLost {
		t.Errorf("older run = %+v", got[1])
	}

	everything, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(everything) != 2 || everything[0].GameID != "shield" {
		t.Errorf("RecentRuns(all, 2) = %+v", everything)
	}

	wins, err := store.WinCount("goblin")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("WinCount = %d, expected 1", wins)
	}
}

func TestSaveRunRequiresOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{GameID: "goblin"}); err == nil {
		t.Error("run without outcome should be rejected")
	}
}

func TestRecord(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(Run{GameID: "invasion", Score: 0, Outcome: OutcomeLost}); err != nil {
		t.Fatalf("Record(zero score) failed: %v", err)
	}
	if err := store.Record(Run{GameID: "invasion", Score: 350, Level: 2, Outcome: OutcomeLost, Ticks: 60}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	runs, _ := store.RecentRuns("invasion", 10)
	if len(runs) != 1 || runs[0].Score != 350 {
		t.Errorf("runs = %+v, expected one run of 350", runs)
	}
	if best, _ := store.HighScore("invasion"); best != 350 {
		t.Errorf("HighScore() = %d, expected 350", best)
	}

	// the score is kept even when the run itself is rejected
	if err := store.Record(Run{GameID: "invasion", Score: 500}); err == nil {
		t.Error("Record() without outcome should report the run error")
	}
	if best, _ := store.HighScore("invasion"); best != 500 {
		t.Errorf("HighScore() = %d, expected 500", best)
	}
}
