package shield

import (
	"strings"
	"testing"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.InputOf(actions...))
}

func TestThrowAndReturn(t *testing.T) {
	g := newTestGame(t, 1)
	g.playerX = 70
	g.enemyX, g.enemyY, g.enemyDir = 0, 2, 1

	res := press(g, core.ActionJump)
	state, x, y := g.Shield()
	if state != ShieldThrown {
		t.Fatal("Jump should throw the shield")
	}
	if x != 71.5 {
		t.Errorf("shield x = %f, expected 71.5", x)
	}
	found := false
	for _, e := range res.Events {
		if e.Kind == core.EventSound && e.Track == "shoot" {
			found = true
		}
	}
	if !found {
		t.Error("throwing should play a sound")
	}

	press(g, core.ActionLeft)
	if _, x2, y2 := g.Shield(); x2 != x || y2 >= y {
		t.Error("thrown shield should fly straight up")
	}

	for i := 0; i < 60 && g.shieldState == ShieldThrown; i++ {
		press(g)
	}
	if g.shieldState != ShieldReady {
		t.Error("shield should return after reaching the top")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}

func TestShieldHitsEnemy(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.Enemy.Speed = 0
	g.enemyX, g.enemyY = g.playerX, 10

	press(g, core.ActionJump)
	for i := 0; i < 60 && g.score == 0; i++ {
		press(g)
	}

	if g.score != 1 {
		t.Fatalf("score = %d, expected 1", g.score)
	}
	if g.shieldState != ShieldReady {
		t.Error("shield should be ready after a hit")
	}
	if g.enemyY < topRow || g.enemyY >= topRow+g.cfg.Enemy.SpawnRows {
		t.Errorf("respawned enemy row = %d, expected within the top rows", g.enemyY)
	}
}

func TestEnemyEdges(t *testing.T) {
	tests := []struct {
		name    string
		x, dir  float64
		wantX   float64
		wantDir float64
		wantY   int
	}{
		{"right edge drops", 76.9, 1, 77, -1, 4},
		{"left edge turns", 0.1, -1, 0, 1, 3},
		{"open field", 40, 1, 40.3, 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.enemyX, g.enemyY, g.enemyDir = tc.x, 3, tc.dir
			g.moveEnemy()
			if g.enemyX < tc.wantX-1e-9 || g.enemyX > tc.wantX+1e-9 || g.enemyDir != tc.wantDir || g.enemyY != tc.wantY {
				t.Errorf("enemy = (%f, %d) dir %f, expected (%f, %d) dir %f",
					g.enemyX, g.enemyY, g.enemyDir, tc.wantX, tc.wantY, tc.wantDir)
			}
		})
	}
}

func TestEnemyReachingDangerLineEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.enemyX, g.enemyY, g.enemyDir = 76.9, g.dangerY()-1, 1

	res := press(g)
	if !res.State.GameOver {
		t.Fatal("enemy at the danger line should end the game")
	}
	score := g.score
	press(g, core.ActionJump)
	if g.score != score || g.shieldState != ShieldReady {
		t.Error("game should not advance after game over")
	}
}

func TestPlayerClamped(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 200; i++ {
		press(g, core.ActionRight)
	}
	if g.playerX != 77 {
		t.Errorf("playerX = %f, expected 77", g.playerX)
	}
	for i := 0; i < 200; i++ {
		press(g, core.ActionLeft)
	}
	if g.playerX != 0 {
		t.Errorf("playerX = %f, expected 0", g.playerX)
	}
}

func TestSpawnWithinBounds(t *testing.T) {
	g := newTestGame(t, 7)
	for i := 0; i < 500; i++ {
		g.spawnEnemy()
		if g.enemyX < 0 || g.enemyX > 77 {
			t.Fatalf("enemy x = %f out of range", g.enemyX)
		}
		if g.enemyY < topRow || g.enemyY > topRow+3 {
			t.Fatalf("enemy row = %d out of range", g.enemyY)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, float64, int) {
		g := newTestGame(t, 2024)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			if (i/90)%2 == 0 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
		return g.State(), g.enemyX, g.enemyY
	}

	s1, x1, y1 := run()
	s2, x2, y2 := run()
	if s1 != s2 || x1 != x2 || y1 != y2 {
		t.Errorf("runs differ: %+v %f %d vs %+v %f %d", s1, x1, y1, s2, x2, y2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(23), PlayerSprite) {
		t.Error("player should be drawn on the bottom row")
	}
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Error("HUD should show the score")
	}
}
