// Package goblin implements Goblin Runner, a three-level side-scroller.
// Shinji walks from the left edge of each level to the right edge while
// jumping over patrolling enemies, with story dialogue between levels.
package goblin

import (
	"math/rand"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
)

// MaxLevel is the last level; clearing it completes the game.
const MaxLevel = 3

// State is a screen of the game.
type State int

const (
	StateMainMenu State = iota
	StateLevelDialogue
	StateTutorial
	StateGameplay
	StateGameOver
	StateGameCompleted
	StateCredits
)

var stateNames = map[State]string{
	StateMainMenu:      "MainMenu",
	StateLevelDialogue: "LevelDialogue",
	StateTutorial:      "Tutorial",
	StateGameplay:      "Gameplay",
	StateGameOver:      "GameOver",
	StateGameCompleted: "GameCompleted",
	StateCredits:       "Credits",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Game implements the Goblin Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.GoblinConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	story      Story

	state    State
	level    int
	score    int
	won      bool
	paused   bool
	exit     bool
	ticks    int // gameplay ticks since the run started
	cooldown int // frames before level exits count
	floor    int // ground row; characters stand on the row above

	char     *Character
	enemies  *EnemySystem
	dialogue *Dialogue
	tutorial *Tutorial
	menu     Menu

	pending []core.Event
}

// New creates a new Goblin Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "goblin"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Goblin Runner"
}

// Configure sets the config file and difficulty preset used by Reset.
// An unknown preset keeps the config's own difficulty settings.
func (g *Game) Configure(configPath, difficulty string) {
	g.configPath = configPath
	if p, err := config.ParsePreset(difficulty); err == nil {
		g.preset = p
	}
}

// Reset initializes the game at the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGoblin(g.configPath)
	if err != nil {
		cfg = config.DefaultGoblinConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, g.preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	story, err := LoadStory()
	if err != nil {
		story = Story{Dialogue: make(map[int][]string)}
	}
	g.story = story

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.floor = runtime.ScreenH - cfg.Character.GroundOffset
	g.char = NewCharacter(cfg.Character, runtime.ScreenW, g.standY(), cfg.Character.StartX)
	g.enemies = NewEnemySystem(cfg.Enemies, g.rng, runtime.ScreenW, float64(g.floor))
	g.dialogue = NewDialogue(story.Dialogue)
	g.tutorial = NewTutorial(cfg.Tutorial.ReadyTicks)

	g.score = 0
	g.won = false
	g.exit = false
	g.pending = nil
	g.resetForMenu()
}

// standY is the character's Y while on the ground.
func (g *Game) standY() float64 {
	return float64(g.floor - g.cfg.Character.Height)
}

// Resize adapts the layout to a new screen size without losing progress.
func (g *Game) Resize(w, h int) {
	if g.char == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.floor = h - g.cfg.Character.GroundOffset
	g.char.SetScreen(w, g.standY())
	g.enemies.SetScreen(w, float64(g.floor))
}

func (g *Game) emit(kind core.EventKind, track string) {
	g.pending = append(g.pending, core.Event{Kind: kind, Track: track})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateMainMenu:
		g.stepMenu(in)
	case StateCredits:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.state = StateMainMenu
		}
	case StateLevelDialogue:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.advanceDialogue()
		}
	case StateTutorial, StateGameplay:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			if g.state == StateTutorial {
				g.stepTutorial(in)
			} else {
				g.stepGameplay(in)
			}
		}
	case StateGameOver:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.resetForMenu()
		}
	case StateGameCompleted:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			if g.dialogue.Active() {
				g.advanceDialogue()
			} else {
				g.resetForMenu()
			}
		}
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.menu.Move(-1)
	}
	if in.Has(core.ActionDown) {
		g.menu.Move(1)
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionJump) {
		return
	}
	switch g.menu.Selected() {
	case ButtonStart:
		g.startGame()
	case ButtonCredits:
		g.state = StateCredits
	case ButtonQuit:
		g.exit = true
	}
}

// startGame begins a new run at level 1.
func (g *Game) startGame() {
	g.level = 1
	g.score = 0
	g.won = false
	g.ticks = 0
	g.cooldown = 0
	g.paused = false
	g.exit = false
	g.char.Place(g.cfg.Character.StartX)
	g.enemies.ResetAll()
	g.tutorial.Reset()
	g.emit(core.EventMusicPlay, g.cfg.Music.Gameplay)
	g.startDialogue(1)
}

// startDialogue shows the dialogue for key; empty dialogues finish at once.
func (g *Game) startDialogue(key int) {
	g.dialogue.SetDialogue(key)
	g.dialogue.Start()
	if key != EpilogueKey {
		g.state = StateLevelDialogue
	}
	if !g.dialogue.Active() && key != EpilogueKey {
		g.finishDialogue()
	}
}

func (g *Game) advanceDialogue() {
	if g.dialogue.Advance() {
		return
	}
	g.finishDialogue()
}

func (g *Game) finishDialogue() {
	key := g.dialogue.LastCompleted
	g.dialogue.LastCompleted = 0
	switch key {
	case 1:
		g.state = StateTutorial
		g.tutorial.Reset()
	case 2, 3:
		g.enterGameplay()
	case EpilogueKey:
		g.resetForMenu()
	}
}

// enterGameplay releases the enemies of the current level.
func (g *Game) enterGameplay() {
	g.state = StateGameplay
	g.cooldown = g.cfg.Dialogue.CooldownFrames
	g.enemies.StartMovement(g.level, g.difficulty.Speed(1, g.score, g.ticks))
}

func (g *Game) stepTutorial(in core.InputFrame) {
	dir := in.Horizontal()
	jumped := in.Has(core.ActionJump) && g.char.Jump()
	if jumped {
		g.emit(core.EventSound, "jump")
	}
	g.char.Update(dir)
	if g.tutorial.Update(dir, jumped) {
		g.enterGameplay()
	}
}

func (g *Game) stepGameplay(in core.InputFrame) {
	g.ticks++
	g.cooldown--

	if in.Has(core.ActionJump) && g.char.Jump() {
		g.emit(core.EventSound, "jump")
	}
	g.char.Update(in.Horizontal())
	g.enemies.Update(g.level)

	hitbox := g.char.Rect().Inset(g.cfg.Character.InsetX, g.cfg.Character.InsetY)
	for _, r := range g.enemies.Rects(g.level) {
		if hitbox.Intersects(r) {
			g.state = StateGameOver
			g.emit(core.EventMusicStop, "")
			g.emit(core.EventSound, "hit")
			return
		}
	}

	if g.cooldown > 0 || !g.char.AtRightEdge() {
		return
	}
	g.score += g.cfg.Scoring.LevelClear * g.level
	g.emit(core.EventSound, "clear")
	if g.level < MaxLevel {
		g.level++
		g.cooldown = g.cfg.Dialogue.CooldownFrames
		g.char.Place(g.cfg.Character.LevelStartX)
		g.enemies.ResetLevel(g.level)
		g.startDialogue(g.level)
		return
	}

	g.score += g.cfg.Scoring.Completion
	g.won = true
	g.state = StateGameCompleted
	g.char.HoldRight()
	g.enemies.ResetAll()
	g.startDialogue(EpilogueKey)
}

// resetForMenu returns to the main menu, keeping the last score visible
// until the next run starts.
func (g *Game) resetForMenu() {
	g.state = StateMainMenu
	g.level = 1
	g.cooldown = 0
	g.paused = false
	g.dialogue.Clear()
	g.char.Place(g.cfg.Character.StartX)
	g.enemies.ResetAll()
	g.tutorial.Reset()
	g.menu.Reset()
	g.emit(core.EventMusicPlay, g.cfg.Music.Menu)
}

// CurrentState returns the screen being shown.
func (g *Game) CurrentState() State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver || g.state == StateGameCompleted,
		Won:      g.won && g.state == StateGameCompleted,
		Paused:   g.paused,
		Exit:     g.exit,
	}
}

// Register the game with the registry
func init() {
	registry.Register("goblin", func() registry.Game {
		return New()
	})
}
