// Package invasion implements Alien Invasion, a fleet shooter.
// The ship fires from the bottom of the screen at a descending grid of aliens.
package invasion

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
)

// Sprites
var (
	shipSprite  = []string{" ▲ ", "╚█╝"}
	alienFrames = [][]string{{"╔█╗", "╝ ╚"}, {"╔█╗", "║ ║"}}
)

const (
	bulletChar     = '│'
	alienAnimEvery = 20 // ticks per alien frame
)

// Game implements the Alien Invasion game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.InvasionConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager

	shipX     float64
	bullets   []Bullet
	fleet     *Fleet
	shipsLeft int
	score     int
	level     int
	gameOver  bool
	paused    bool
	tickCount int
	hitPause  int // ticks left frozen after losing a ship

	// per-level values, scaled up as fleets are cleared
	shipSpeed   float64
	bulletSpeed float64
	alienSpeed  float64
	points      int

	alienAnim core.Animator
	pending   []core.Event
}

// New creates a new Alien Invasion game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
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

	cfg, err := config.LoadInvasion(g.configPath)
	if err != nil {
		cfg = config.DefaultInvasionConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, g.preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.shipSpeed = cfg.Ship.Speed
	g.bulletSpeed = cfg.Bullet.Speed
	g.alienSpeed = cfg.Alien.Speed
	g.points = cfg.Alien.Points

	g.shipsLeft = cfg.Game.ShipLimit
	g.score = 0
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.hitPause = 0
	g.bullets = nil
	g.alienAnim = core.NewAnimator(len(alienFrames), alienAnimEvery)
	g.newFleet()
	g.centerShip()

	g.pending = []core.Event{{Kind: core.EventMusicPlay, Track: "battle"}}
}

func (g *Game) newFleet() {
	g.fleet = NewFleet(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Alien.Width, g.cfg.Alien.Height)
}

func (g *Game) centerShip() {
	g.shipX = float64(g.runtime.ScreenW-g.cfg.Ship.Width) / 2
}

func (g *Game) shipY() int {
	return g.runtime.ScreenH - g.cfg.Ship.Height
}

func (g *Game) shipRect() core.Rect {
	return core.NewRect(int(math.Round(g.shipX)), g.shipY(), g.cfg.Ship.Width, g.cfg.Ship.Height)
}

func (g *Game) bulletRect(b Bullet) core.Rect {
	return core.NewRect(int(math.Round(b.X)), int(math.Round(b.Y)), g.cfg.Bullet.Width, g.cfg.Bullet.Height)
}

// Resize adapts to a new screen size, keeping the fleet and score.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.shipX = core.ClampF(g.shipX, 0, math.Max(0, float64(w-g.cfg.Ship.Width)))
}

func (g *Game) emit(kind core.EventKind, track string) {
	g.pending = append(g.pending, core.Event{Kind: kind, Track: track})
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
	if g.hitPause > 0 {
		g.hitPause--
		return
	}

	g.tickCount++
	g.alienAnim.Tick()

	maxX := math.Max(0, float64(g.runtime.ScreenW-g.cfg.Ship.Width))
	g.shipX = core.ClampF(g.shipX+g.shipSpeed*float64(in.Horizontal()), 0, maxX)

	if in.Has(core.ActionJump) {
		g.fireBullet()
	}
	g.updateBullets()

	g.fleet.Update(g.runtime.ScreenW, g.currentAlienSpeed(), g.cfg.Alien.FleetDrop)

	ship := g.shipRect()
	for i := range g.fleet.Aliens {
		if g.fleet.Rect(i).Intersects(ship) {
			g.shipHit()
			return
		}
	}
	if g.fleet.ReachedBottom(g.runtime.ScreenH) {
		g.shipHit()
	}
}

// currentAlienSpeed applies difficulty progression to the level speed.
func (g *Game) currentAlienSpeed() float64 {
	return g.difficulty.Speed(g.alienSpeed, g.score, g.tickCount)
}

func (g *Game) fireBullet() {
	if len(g.bullets) >= g.cfg.Bullet.Allowed {
		return
	}
	x := g.shipX + float64(g.cfg.Ship.Width-g.cfg.Bullet.Width)/2
	y := float64(g.shipY() - g.cfg.Bullet.Height)
	g.bullets = append(g.bullets, Bullet{X: x, Y: y})
	g.emit(core.EventSound, "shoot")
}

// updateBullets moves bullets, drops those off the top and resolves hits.
func (g *Game) updateBullets() {
	kept := g.bullets[:0]
	shot := false
	for _, b := range g.bullets {
		b.Y -= g.bulletSpeed
		if b.Y+float64(g.cfg.Bullet.Height) <= 0 {
			continue
		}
		if n := g.fleet.RemoveHits(g.bulletRect(b)); n > 0 {
			g.score += n * g.points
			g.emit(core.EventSound, "hit")
			shot = true
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept

	// A fleet that never fit on screen is not a cleared level.
	if shot && g.fleet.Empty() {
		g.nextLevel()
	}
}

// nextLevel rebuilds the fleet and speeds up the game.
func (g *Game) nextLevel() {
	g.bullets = nil
	g.newFleet()
	scale := g.cfg.Game.SpeedupScale
	g.shipSpeed *= scale
	g.bulletSpeed *= scale
	g.alienSpeed *= scale
	g.points = int(float64(g.points) * g.cfg.Game.ScoreScale)
	g.level++
	g.emit(core.EventSound, "clear")
}

// shipHit spends a ship and restarts the wave, or ends the game.
func (g *Game) shipHit() {
	g.emit(core.EventSound, "hit")
	if g.shipsLeft <= 0 {
		g.gameOver = true
		g.emit(core.EventMusicStop, "")
		return
	}
	g.shipsLeft--
	g.bullets = nil
	g.newFleet()
	g.centerShip()
	g.hitPause = g.cfg.Game.HitPauseTicks
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	frame := alienFrames[g.alienAnim.Index()]
	for i := range g.fleet.Aliens {
		r := g.fleet.Rect(i)
		dst.DrawSprite(r.X, r.Y, frame, core.ColorBrightGreen)
	}
	for _, b := range g.bullets {
		r := g.bulletRect(b)
		dst.DrawRectColor(r, bulletChar, core.ColorBrightYellow)
	}
	ship := g.shipRect()
	shipColor := core.ColorBrightCyan
	if g.hitPause > 0 && g.hitPause%10 < 5 {
		shipColor = core.ColorRed
	}
	dst.DrawSprite(ship.X, ship.Y, shipSprite, shipColor)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	levelText := fmt.Sprintf(" Level %d ", g.level)
	dst.DrawTextCenteredColor(0, levelText, core.ColorBrightYellow)
	ships := " " + strings.Repeat("▲", g.shipsLeft) + " "
	dst.DrawTextColor(dst.Width()-len([]rune(ships))-2, 0, ships, core.ColorBrightCyan)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("invasion", func() registry.Game {
		return New()
	})
}
