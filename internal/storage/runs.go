package storage

import (
	"errors"
	"fmt"
	"time"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit" // left before the run finished
)

// Run is one play-through of a game from start to game over.
type Run struct {
	ID        int64
	GameID    string
	SessionID string // SSH session, empty for local play
	Score     int
	Level     int
	Outcome   Outcome
	Ticks     int // simulation ticks the run lasted
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Outcome == "" {
		return 0, fmt.Errorf("storage: run for %q has no outcome", r.GameID)
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, session_id, score, level, outcome, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.SessionID, r.Score, r.Level, string(r.Outcome), r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Record saves a finished run to both the high score table and the run history.
// Runs that never scored are skipped. Both writes are attempted even if one fails.
func (s *Store) Record(r Run) error {
	if r.Score <= 0 {
		return nil
	}
	_, scoreErr := s.SaveScore(r.GameID, r.Score)
	_, runErr := s.SaveRun(r)
	return errors.Join(scoreErr, runErr)
}

// RecentRuns returns the newest runs first. An empty gameID returns runs of all games.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, game_id, session_id, score, level, outcome, ticks, created_at
		 FROM runs`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.SessionID, &r.Score, &r.Level, &outcome, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// WinCount returns how many runs of a game ended in victory.
func (s *Store) WinCount(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM runs WHERE game_id = ? AND outcome = ?`,
		gameID, string(OutcomeWon),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return n, nil
}
