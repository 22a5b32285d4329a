package config

import (
	_ "embed"
)

//go:embed defaults/goblin.yaml
var defaultGoblinYAML []byte

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

//go:embed defaults/shield.yaml
var defaultShieldYAML []byte

// DefaultGoblinConfig returns the built-in Goblin Runner configuration.
// It mirrors defaults/goblin.yaml and is used when the embedded file fails to parse.
func DefaultGoblinConfig() GoblinConfig {
	return GoblinConfig{
		Character: GoblinCharacter{
			Width:        5,
			Height:       3,
			StartX:       6,
			LevelStartX:  0,
			GroundOffset: 2,
			Speed:        0.8,
			JumpPower:    -1.1,
			Gravity:      0.08,
			AnimEvery:    5,
			InsetX:       1,
			InsetY:       0,
		},
		Enemies: GoblinEnemies{
			BaseSpeed:  0.125,
			PerLevel:   0.02,
			PerIndex:   0.01,
			EdgeMargin: 1,
			AnimEvery:  16,
			Levels: map[int]GoblinEnemyLevel{
				1: {Kind: "slime", Width: 4, Height: 2, Positions: []float64{0.70}},
				2: {Kind: "goblin", Width: 5, Height: 3, Positions: []float64{0.20, 0.45, 0.70}},
				3: {Kind: "ogre", Width: 6, Height: 4, Positions: []float64{0.90, 0.25, 0.60}},
			},
		},
		Dialogue: GoblinDialogue{CooldownFrames: 60, OverlayUntil: 3},
		Tutorial: GoblinTutorial{ReadyTicks: 90},
		Scoring:  GoblinScoring{LevelClear: 100, Completion: 500},
		Music:    GoblinMusic{Menu: "menu", Gameplay: "nature"},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 300},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.6},
		},
	}
}

// DefaultInvasionConfig returns the built-in Alien Invasion configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Ship:   InvasionShip{Width: 3, Height: 2, Speed: 0.6},
		Bullet: InvasionBullet{Width: 1, Height: 1, Speed: 0.5, Allowed: 3},
		Alien:  InvasionAlien{Width: 3, Height: 2, Speed: 0.1, FleetDrop: 1, Points: 50},
		Game: InvasionGame{
			ShipLimit:     3,
			SpeedupScale:  1.1,
			ScoreScale:    1.5,
			HitPauseTicks: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 5000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultShieldConfig returns the built-in Shield Toss configuration.
func DefaultShieldConfig() ShieldConfig {
	return ShieldConfig{
		Player: ShieldPlayer{Width: 3, Speed: 0.7},
		Shield: ShieldThrow{Speed: 0.6, HitRadius: 2.5, RowScale: 2.0},
		Enemy:  ShieldEnemy{Width: 3, Speed: 0.3, Drop: 1, SpawnRows: 4, DangerRows: 2},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 30},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}
