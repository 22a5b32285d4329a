package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	// isolate from any real ~/.arcade or ./configs
	t.Setenv("HOME", t.TempDir())
	old := localConfigDir
	localConfigDir = filepath.Join(t.TempDir(), "none")
	t.Cleanup(func() { localConfigDir = old })

	g, err := LoadGoblin("")
	if err != nil {
		t.Fatalf("LoadGoblin: %v", err)
	}
	want := DefaultGoblinConfig()
	if g.Character != want.Character {
		t.Errorf("goblin character = %+v, expected %+v", g.Character, want.Character)
	}
	if len(g.Enemies.Levels) != 3 || g.Enemies.Levels[2].Kind != "goblin" || len(g.Enemies.Levels[3].Positions) != 3 {
		t.Errorf("goblin enemy levels = %+v", g.Enemies.Levels)
	}
	if g.Dialogue.CooldownFrames != 60 || g.Dialogue.OverlayUntil != 3 {
		t.Errorf("goblin dialogue = %+v", g.Dialogue)
	}

	inv, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion: %v", err)
	}
	if inv != DefaultInvasionConfig() {
		t.Errorf("invasion = %+v, expected %+v", inv, DefaultInvasionConfig())
	}

	sh, err := LoadShield("")
	if err != nil {
		t.Fatalf("LoadShield: %v", err)
	}
	if sh != DefaultShieldConfig() {
		t.Errorf("shield = %+v, expected %+v", sh, DefaultShieldConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.yaml")
	data := []byte("game:\n  ship_limit: 7\nalien:\n  points: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvasion(path)
	if err != nil {
		t.Fatalf("LoadInvasion: %v", err)
	}
	if cfg.Game.ShipLimit != 7 || cfg.Alien.Points != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// keys absent from the file keep their defaults
	if cfg.Bullet.Allowed != 3 || cfg.Game.SpeedupScale != 1.1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadShield(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadShield(bad)
	if err == nil {
		t.Error("malformed explicit config should fail")
	}
	if cfg.Player.Width != DefaultShieldConfig().Player.Width {
		t.Error("failed load should still return defaults")
	}
}

func TestLoadUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "goblin.yaml"), []byte("character:\n  speed: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGoblin("")
	if err != nil {
		t.Fatalf("LoadGoblin: %v", err)
	}
	if cfg.Character.Speed != 1.5 {
		t.Errorf("speed = %f, expected 1.5 from user config", cfg.Character.Speed)
	}
	if cfg.Character.Width != 5 {
		t.Errorf("width = %d, expected default 5", cfg.Character.Width)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantInitial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.5},
		{"", true, 0.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DifficultyConfig{Enabled: true, InitialLevel: 0.5}
			ApplyPreset(&cfg, tc.preset)
			if cfg.Enabled != tc.wantEnabled || cfg.InitialLevel != tc.wantInitial {
				t.Errorf("ApplyPreset(%q) = %+v", tc.preset, cfg)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
