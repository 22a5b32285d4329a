package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goblin-arcade/internal/audio"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

// HoldDuration is how long a Left/Right key press counts as held.
// Terminals report key presses and auto-repeats but no releases.
const HoldDuration = 150 * time.Millisecond

// Options carries the optional collaborators of a game Model.
type Options struct {
	Store     *storage.Store
	Music     *audio.Music
	SessionID string // SSH session, empty for local play
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame     // one-shot actions since the last tick
	held       map[core.Action]int // latched movement keys, ticks remaining
	holdTicks  int
	gameState  core.GameState
	runTicks   int // ticks of the current run
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		holdTicks:  holdTicks(cfg.TickRate),
	}
}

// holdTicks converts HoldDuration to simulation ticks, at least one.
func holdTicks(tickRate int) int {
	n := int(HoldDuration * time.Duration(tickRate) / time.Second)
	return core.Max(n, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun(storage.OutcomeQuit)
		m.stopMusic()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionLeft, core.ActionRight:
		m.press(action)
		return m, nil
	case core.ActionBack:
		// B/Esc leaves a finished or paused game
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun(storage.OutcomeQuit)
			m.stopMusic()
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// press latches a movement key; the opposite direction is released.
func (m *Model) press(a core.Action) {
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.held, opposite)
	m.held[a] = m.holdTicks
}

// frame merges one-shot actions with latched movement keys and ages the latches.
func (m *Model) frame() core.InputFrame {
	f := m.inputFrame.Clone()
	for a, n := range m.held {
		f.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}
	return f
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	// Games without Resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.runTicks = 0
		m.inputFrame.Clear()
		clear(m.held)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.frame())
	m.inputFrame.Clear()
	m.gameState = result.State
	if m.opts.Music != nil {
		m.opts.Music.HandleAll(result.Events)
	}

	switch {
	case m.gameState.GameOver:
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.finishRun(outcome)
	case m.scoreSaved:
		// The last score may stay on screen after game over. A new run
		// begins once the game zeroes it.
		if m.gameState.Score == 0 {
			m.scoreSaved = false
			m.runTicks = 0
		}
	case !m.gameState.Paused:
		m.runTicks++
	}

	if m.gameState.Exit {
		m.finishRun(storage.OutcomeQuit)
		m.stopMusic()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun records the score and run history once per run.
// Runs that never scored are not recorded.
func (m *Model) finishRun(outcome storage.Outcome) {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}
	err := m.opts.Store.Record(storage.Run{
		GameID:    m.game.ID(),
		SessionID: m.opts.SessionID,
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		Outcome:   outcome,
		Ticks:     m.runTicks,
	})
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not record run", "game", m.game.ID(), "error", err)
	}
}

func (m *Model) stopMusic() {
	if m.opts.Music != nil {
		m.opts.Music.Stop()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the arcade.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game ended and the arcade menu should show.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// It returns whether the user asked to quit the arcade entirely.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (quit bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.IsQuitting(), nil
	}
	return true, nil
}
