package invasion

import (
	"strings"
	"testing"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.InputOf(actions...))
}

func TestFleetLayout(t *testing.T) {
	f := NewFleet(80, 24, 3, 2)
	if len(f.Aliens) != 48 {
		t.Fatalf("fleet size = %d, expected 48", len(f.Aliens))
	}
	if first := f.Aliens[0]; first.X != 3 || first.Y != 2 {
		t.Errorf("first alien at (%f, %f), expected (3, 2)", first.X, first.Y)
	}
	if last := f.Aliens[len(f.Aliens)-1]; last.X != 69 || last.Y != 14 {
		t.Errorf("last alien at (%f, %f), expected (69, 14)", last.X, last.Y)
	}
	if len(NewFleet(80, 24, 0, 2).Aliens) != 0 {
		t.Error("zero-size aliens should produce an empty fleet")
	}
}

func TestFleetEdgeDropsAndReverses(t *testing.T) {
	tests := []struct {
		name     string
		x, dir   float64
		expected float64
	}{
		{"right edge", 77, 1, 76.5},
		{"left edge", 0, -1, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &Fleet{Aliens: []Alien{{X: tc.x, Y: 5}}, Dir: tc.dir, w: 3, h: 2}
			f.Update(80, 0.5, 1)
			if f.Dir != -tc.dir {
				t.Errorf("Dir = %f, expected %f", f.Dir, -tc.dir)
			}
			if a := f.Aliens[0]; a.Y != 6 || a.X != tc.expected {
				t.Errorf("alien at (%f, %f), expected (%f, 6)", a.X, a.Y, tc.expected)
			}
		})
	}

	f := &Fleet{Aliens: []Alien{{X: 40, Y: 5}}, Dir: 1, w: 3, h: 2}
	f.Update(80, 0.5, 1)
	if f.Aliens[0].Y != 5 || f.Dir != 1 {
		t.Error("fleet away from the edges should not drop")
	}
}

func TestFirstStepStartsMusic(t *testing.T) {
	g := newTestGame(t)
	res := press(g)
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventMusicPlay || res.Events[0].Track != "battle" {
		t.Errorf("events = %+v, expected battle music", res.Events)
	}
}

func TestShipMovementClamped(t *testing.T) {
	g := newTestGame(t)
	g.alienSpeed = 0
	for i := 0; i < 200; i++ {
		press(g, core.ActionLeft)
	}
	if g.shipX != 0 {
		t.Errorf("shipX = %f, expected 0", g.shipX)
	}
	for i := 0; i < 300; i++ {
		press(g, core.ActionRight)
	}
	if g.shipX != 77 {
		t.Errorf("shipX = %f, expected 77", g.shipX)
	}
}

func TestBulletLimit(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		press(g, core.ActionJump)
	}
	if len(g.bullets) != g.cfg.Bullet.Allowed {
		t.Errorf("bullets = %d, expected %d", len(g.bullets), g.cfg.Bullet.Allowed)
	}
}

func TestBulletRemovedAtTop(t *testing.T) {
	g := newTestGame(t)
	g.fleet.Aliens = []Alien{{X: 70, Y: 2}}
	press(g, core.ActionJump)
	for i := 0; i < 50; i++ {
		press(g)
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected 0 after leaving the screen", len(g.bullets))
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}

func TestShootingLastAlienStartsNextLevel(t *testing.T) {
	g := newTestGame(t)
	g.alienSpeed = 0
	g.fleet.Aliens = []Alien{{X: 39, Y: 10}}
	shipSpeed := g.shipSpeed

	press(g, core.ActionJump)
	for i := 0; i < 40 && g.level == 1; i++ {
		press(g)
	}

	if g.level != 2 {
		t.Fatalf("level = %d, expected 2", g.level)
	}
	if g.score != 50 {
		t.Errorf("score = %d, expected 50", g.score)
	}
	if g.points != 75 {
		t.Errorf("points = %d, expected 75", g.points)
	}
	if len(g.fleet.Aliens) != 48 || len(g.bullets) != 0 {
		t.Errorf("new level should rebuild the fleet and clear bullets")
	}
	if g.shipSpeed <= shipSpeed {
		t.Error("ship should speed up on a new level")
	}
}

func TestBulletDestroysEveryAlienItTouches(t *testing.T) {
	g := newTestGame(t)
	g.alienSpeed = 0
	g.fleet.Aliens = []Alien{{X: 39, Y: 10}, {X: 40, Y: 10}, {X: 5, Y: 3}}

	press(g, core.ActionJump)
	for i := 0; i < 40 && len(g.fleet.Aliens) == 3; i++ {
		press(g)
	}

	if len(g.fleet.Aliens) != 1 || g.fleet.Aliens[0].X != 5 {
		t.Fatalf("aliens = %+v, expected only the one off the bullet path", g.fleet.Aliens)
	}
	if g.score != 100 {
		t.Errorf("score = %d, expected 100 for two aliens", g.score)
	}
	if g.level != 1 || len(g.bullets) != 0 {
		t.Errorf("level = %d, bullets = %d", g.level, len(g.bullets))
	}
}

func TestShortScreenDoesNotAdvanceLevels(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 8, TickRate: 60, Seed: 1})
	if !g.fleet.Empty() {
		t.Fatalf("expected no aliens to fit, got %d", len(g.fleet.Aliens))
	}
	speed, points := g.alienSpeed, g.points

	for i := 0; i < 400; i++ {
		press(g)
	}

	if g.level != 1 || g.alienSpeed != speed || g.points != points {
		t.Errorf("level = %d, alienSpeed = %f, points = %d; expected no progression",
			g.level, g.alienSpeed, g.points)
	}
}

func TestShipHitSpendsShip(t *testing.T) {
	g := newTestGame(t)
	g.fleet.Aliens = []Alien{{X: 38, Y: 21}}

	res := press(g)
	if g.shipsLeft != 2 {
		t.Fatalf("shipsLeft = %d, expected 2", g.shipsLeft)
	}
	if res.State.GameOver {
		t.Fatal("game should go on while ships remain")
	}
	if g.hitPause != g.cfg.Game.HitPauseTicks || len(g.fleet.Aliens) != 48 {
		t.Error("hit should freeze the game and rebuild the fleet")
	}

	ticks := g.tickCount
	for i := 0; i < g.cfg.Game.HitPauseTicks; i++ {
		press(g, core.ActionRight)
	}
	if g.tickCount != ticks {
		t.Error("game advanced during the hit pause")
	}
	press(g)
	if g.tickCount != ticks+1 {
		t.Error("game should resume after the hit pause")
	}
}

func TestAlienAtBottomEndsGameWithoutShips(t *testing.T) {
	g := newTestGame(t)
	g.shipsLeft = 0
	g.fleet.Aliens = []Alien{{X: 5, Y: 22}}

	res := press(g)
	if !res.State.GameOver {
		t.Fatal("alien reaching the bottom with no ships left should end the game")
	}
	stopped := false
	for _, e := range res.Events {
		if e.Kind == core.EventMusicStop {
			stopped = true
		}
	}
	if !stopped {
		t.Error("game over should stop the music")
	}

	x := g.shipX
	press(g, core.ActionLeft)
	if g.shipX != x {
		t.Error("game should not advance after game over")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := g.tickCount
	press(g, core.ActionJump)
	if g.tickCount != ticks || len(g.bullets) != 0 {
		t.Error("game advanced while paused")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, float64, int) {
		g := newTestGame(t)
		for i := 0; i < 1500; i++ {
			in := core.NewInputFrame()
			if i%4 == 0 {
				in.Set(core.ActionJump)
			}
			if (i/60)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.State(), g.shipX, len(g.fleet.Aliens)
	}

	s1, x1, n1 := run()
	s2, x2, n2 := run()
	if s1 != s2 || x1 != x2 || n1 != n2 {
		t.Errorf("runs differ: %+v %f %d vs %+v %f %d", s1, x1, n1, s2, x2, n2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Level 1") {
		t.Error("HUD should show score and level")
	}
	if !strings.Contains(scr.Row(2), "╔█╗") {
		t.Error("first fleet row should be drawn")
	}
}
