package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-based; 0 when the game has no levels
	GameOver bool // Whether the run has ended (defeat or victory)
	Won      bool // Whether the run ended in victory
	Paused   bool // Whether the game is paused
	Exit     bool // Game asked the platform to leave it (menu Quit button)
}

// EventKind identifies a side effect the platform should carry out.
type EventKind int

const (
	EventMusicPlay EventKind = iota + 1 // start a looping background track
	EventMusicStop                      // stop the background track
	EventSound                          // one-shot sound effect
)

// Event is emitted by a game during Step for the platform to handle.
type Event struct {
	Kind  EventKind
	Track string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
