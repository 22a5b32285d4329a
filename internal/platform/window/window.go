// Package window runs arcade games in a desktop window with Ebitengine.
// It draws the same cell buffer the terminal frontend uses, one bitmap-font
// glyph per cell, and reads real key state instead of latching key presses.
package window

import (
	"errors"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/goblin-arcade/internal/audio"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/platform/window/glyph"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

// Cell size in pixels, matching basicfont.Face7x13.
const (
	CellW  = 7
	CellH  = 13
	ascent = 11
)

var background = color.RGBA{0x10, 0x10, 0x14, 0xff}

// palette maps cell colors to RGB, close to the xterm-256 codes the terminal uses.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorBrown:         {0xaf, 0x5f, 0x00, 0xff},
	core.ColorDarkGreen:     {0x00, 0x5f, 0x00, 0xff},
	core.ColorDarkGray:      {0x44, 0x44, 0x44, 0xff},
}

// Keys read as held every frame.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Keys that fire once per press.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionJump:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
}

// Options carries the optional collaborators of a window Runner.
type Options struct {
	Store      *storage.Store
	Music      *audio.Music
	Logger     *log.Logger
	Fullscreen bool
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game     registry.Game
	cfg      core.RuntimeConfig
	opts     Options
	screen   *core.Screen
	state    core.GameState
	runTicks int
	recorded bool
}

// NewRunner creates a runner for the given game. The game is reset on Run.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Runner{
		game:   game,
		cfg:    cfg,
		opts:   opts,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Update advances the game by one tick. ebiten calls it at the configured TPS.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		r.finishRun(storage.OutcomeQuit)
		return ebiten.Termination
	}

	in := readInput()
	if in.Has(core.ActionRestart) && r.state.GameOver {
		r.game.Reset(r.cfg)
		r.state = r.game.State()
		r.recorded = false
		r.runTicks = 0
		return nil
	}
	if in.Has(core.ActionBack) && (r.state.GameOver || r.state.Paused) {
		r.finishRun(storage.OutcomeQuit)
		return ebiten.Termination
	}

	res := r.game.Step(in)
	r.state = res.State
	if r.opts.Music != nil {
		r.opts.Music.HandleAll(res.Events)
	}

	switch {
	case r.state.GameOver:
		outcome := storage.OutcomeLost
		if r.state.Won {
			outcome = storage.OutcomeWon
		}
		r.finishRun(outcome)
	case r.recorded:
		if r.state.Score == 0 {
			r.recorded = false
			r.runTicks = 0
		}
	case !r.state.Paused:
		r.runTicks++
	}

	if r.state.Exit {
		r.finishRun(storage.OutcomeQuit)
		return ebiten.Termination
	}
	return nil
}

func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for a, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(a)
			}
		}
	}
	for a, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(a)
			}
		}
	}
	return in
}

func (r *Runner) finishRun(outcome storage.Outcome) {
	if r.recorded || r.state.Score <= 0 {
		return
	}
	r.recorded = true
	if r.opts.Store == nil {
		return
	}
	err := r.opts.Store.Record(storage.Run{
		GameID:  r.game.ID(),
		Score:   r.state.Score,
		Level:   r.state.Level,
		Outcome: outcome,
		Ticks:   r.runTicks,
	})
	if err != nil {
		r.opts.Logger.Warn("could not record run", "game", r.game.ID(), "error", err)
	}
}

// Draw renders the cell buffer. Runs of same-colored text go through the font
// in one call; block and box-drawing runes are filled as rectangles.
func (r *Runner) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	r.screen.Clear()
	r.game.Render(r.screen)

	var run strings.Builder
	for y := range r.screen.Height() {
		x := 0
		for x < r.screen.Width() {
			c := r.screen.GetCell(x, y).Color
			start := x
			run.Reset()
			for x < r.screen.Width() {
				cell := r.screen.GetCell(x, y)
				if cell.Color != c {
					break
				}
				if shape, ok := glyph.Lookup(cell.Rune); ok {
					drawShape(dst, x, y, shape, colorOf(c))
					run.WriteRune(' ')
				} else {
					run.WriteRune(glyph.Fallback(cell.Rune))
				}
				x++
			}
			if s := run.String(); strings.TrimSpace(s) != "" {
				text.Draw(dst, s, basicfont.Face7x13, start*CellW, y*CellH+ascent, colorOf(c))
			}
		}
	}
}

func drawShape(dst *ebiten.Image, cx, cy int, s glyph.Shape, c color.RGBA) {
	fill := c
	if s.Alpha < 1 {
		// premultiplied alpha
		fill = color.RGBA{
			R: uint8(float64(c.R) * s.Alpha),
			G: uint8(float64(c.G) * s.Alpha),
			B: uint8(float64(c.B) * s.Alpha),
			A: uint8(255 * s.Alpha),
		}
	}
	ox, oy := float32(cx*CellW), float32(cy*CellH)
	for _, b := range s.Boxes {
		vector.DrawFilledRect(dst,
			ox+float32(b.X*CellW), oy+float32(b.Y*CellH),
			float32(b.W*CellW), float32(b.H*CellH),
			fill, false)
	}
}

func colorOf(c core.Color) color.RGBA {
	if rgb, ok := palette[c]; ok {
		return rgb
	}
	return palette[core.ColorDefault]
}

// Layout maps the window to a cell grid and resizes the game when it changes.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := core.Max(outsideWidth/CellW, 1)
	h := core.Max(outsideHeight/CellH, 1)
	if w != r.cfg.ScreenW || h != r.cfg.ScreenH {
		r.cfg.ScreenW, r.cfg.ScreenH = w, h
		r.screen.Resize(w, h)
		if rs, ok := r.game.(registry.Resizer); ok {
			rs.Resize(w, h)
		} else if !r.state.GameOver {
			r.game.Reset(r.cfg)
		}
	}
	return w * CellW, h * CellH
}

// State returns the last game state seen by the runner.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	r := NewRunner(game, cfg, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(r.cfg.ScreenW*CellW, r.cfg.ScreenH*CellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetTPS(r.cfg.TickRate)

	game.Reset(r.cfg)
	err := ebiten.RunGame(r)

	// closing the window ends the run without a game over
	r.finishRun(storage.OutcomeQuit)
	if r.opts.Music != nil {
		r.opts.Music.Quit()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
