// Package shield implements Shield Toss, a single-target shooter.
// The player throws a shield at an enemy that sweeps across the screen and
// creeps lower each time it reaches the right edge.
package shield

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
)

// ShieldState is whether the shield is in hand or in flight.
type ShieldState int

const (
	ShieldReady ShieldState = iota
	ShieldThrown
)

const (
	PlayerSprite = "/█\\"
	EnemySprite  = "{ò}"
	ShieldChar   = '◎'
	DangerChar   = '┄'
	topRow       = 1 // row 0 holds the HUD
)

// Game implements the Shield Toss game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShieldConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	playerX float64

	shieldState ShieldState
	shieldX     float64
	shieldY     float64

	enemyX   float64
	enemyY   int
	enemyDir float64

	score     int
	gameOver  bool
	paused    bool
	tickCount int

	pending []core.Event
}

// New creates a new Shield Toss game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shield"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shield Toss"
}

// Configure sets the config file and difficulty preset used by Reset.
func (g *Game) Configure(configPath, difficulty string) {
	g.configPath = configPath
	if p, err := config.ParsePreset(difficulty); err == nil {
		g.preset = p
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShield(g.configPath)
	if err != nil {
		cfg = config.DefaultShieldConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, g.preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.playerX = float64(runtime.ScreenW-cfg.Player.Width) / 2
	g.readyShield()
	g.enemyDir = 1
	g.spawnEnemy()

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.pending = []core.Event{{Kind: core.EventMusicPlay, Track: "battle"}}
}

func (g *Game) playerY() int {
	return g.runtime.ScreenH - 1
}

// dangerY is the row the enemy must not reach.
func (g *Game) dangerY() int {
	return g.playerY() - g.cfg.Enemy.DangerRows
}

func (g *Game) maxPlayerX() float64 {
	return math.Max(0, float64(g.runtime.ScreenW-g.cfg.Player.Width))
}

func (g *Game) maxEnemyX() float64 {
	return math.Max(0, float64(g.runtime.ScreenW-g.cfg.Enemy.Width))
}

func (g *Game) readyShield() {
	g.shieldState = ShieldReady
	g.shieldX = g.playerX + float64(g.cfg.Player.Width)/2
	g.shieldY = float64(g.playerY() - 1)
}

// spawnEnemy places the enemy at a random column within the top rows.
func (g *Game) spawnEnemy() {
	g.enemyX = float64(g.rng.Intn(int(g.maxEnemyX()) + 1))
	g.enemyY = topRow + g.rng.Intn(core.Max(g.cfg.Enemy.SpawnRows, 1))
}

// Resize adapts to a new screen size, keeping score and positions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.playerX = core.ClampF(g.playerX, 0, g.maxPlayerX())
	g.enemyX = core.ClampF(g.enemyX, 0, g.maxEnemyX())
	if g.shieldState == ShieldReady {
		g.readyShield()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.step(in)
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) step(in core.InputFrame) {
	if g.gameOver {
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	g.tickCount++

	g.playerX = core.ClampF(g.playerX+g.cfg.Player.Speed*float64(in.Horizontal()), 0, g.maxPlayerX())

	switch g.shieldState {
	case ShieldReady:
		g.readyShield()
		if in.Has(core.ActionJump) {
			g.shieldState = ShieldThrown
			g.pending = append(g.pending, core.Event{Kind: core.EventSound, Track: "shoot"})
		}
	case ShieldThrown:
		g.shieldY -= g.cfg.Shield.Speed
		if g.shieldY < topRow {
			g.readyShield()
		}
	}

	g.moveEnemy()
	if g.enemyY >= g.dangerY() {
		g.gameOver = true
		g.pending = append(g.pending, core.Event{Kind: core.EventMusicStop})
		return
	}

	if g.shieldState == ShieldThrown && g.hit() {
		g.score++
		g.readyShield()
		g.spawnEnemy()
		g.pending = append(g.pending, core.Event{Kind: core.EventSound, Track: "hit"})
	}
}

// moveEnemy sweeps the enemy, dropping it each time it turns at the right edge.
func (g *Game) moveEnemy() {
	speed := g.difficulty.Speed(g.cfg.Enemy.Speed, g.score, g.tickCount)
	g.enemyX += speed * g.enemyDir
	if g.enemyX <= 0 {
		g.enemyX = 0
		g.enemyDir = 1
	} else if g.enemyX >= g.maxEnemyX() {
		g.enemyX = g.maxEnemyX()
		g.enemyDir = -1
		g.enemyY += g.cfg.Enemy.Drop
	}
}

// hit tests the shield against the enemy center, weighting rows by the
// cell aspect ratio.
func (g *Game) hit() bool {
	cx := g.enemyX + float64(g.cfg.Enemy.Width)/2
	d := core.Distance(g.shieldX, g.shieldY, cx, float64(g.enemyY), g.cfg.Shield.RowScale)
	return d < g.cfg.Shield.HitRadius
}

// Shield returns the shield state and position.
func (g *Game) Shield() (ShieldState, float64, float64) {
	return g.shieldState, g.shieldX, g.shieldY
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for x := 0; x < dst.Width(); x += 2 {
		dst.SetColor(x, g.dangerY(), DangerChar, core.ColorRed)
	}
	dst.DrawTextColor(int(math.Round(g.enemyX)), g.enemyY, EnemySprite, core.ColorBrightMagenta)
	dst.DrawTextColor(int(math.Round(g.playerX)), g.playerY(), PlayerSprite, core.ColorBrightCyan)
	if g.shieldState == ShieldThrown {
		dst.SetColor(int(g.shieldX), int(math.Round(g.shieldY)), ShieldChar, core.ColorBrightYellow)
	}

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("shield", func() registry.Game {
		return New()
	})
}
