// Package config provides YAML-based game configuration loading,
// difficulty management and process settings for the arcade platform.
package config

// GoblinConfig contains all configuration for Goblin Runner.
// Distances are in screen cells, speeds in cells per tick.
type GoblinConfig struct {
	Character  GoblinCharacter  `yaml:"character"`
	Enemies    GoblinEnemies    `yaml:"enemies"`
	Dialogue   GoblinDialogue   `yaml:"dialogue"`
	Tutorial   GoblinTutorial   `yaml:"tutorial"`
	Scoring    GoblinScoring    `yaml:"scoring"`
	Music      GoblinMusic      `yaml:"music"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GoblinCharacter defines the player character.
type GoblinCharacter struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	StartX       float64 `yaml:"start_x"`       // x on a new game
	LevelStartX  float64 `yaml:"level_start_x"` // x after entering the next level
	GroundOffset int     `yaml:"ground_offset"` // rows between the feet and the bottom edge
	Speed        float64 `yaml:"speed"`
	JumpPower    float64 `yaml:"jump_power"` // negative, upward velocity on jump
	Gravity      float64 `yaml:"gravity"`
	AnimEvery    int     `yaml:"anim_every"`
	InsetX       int     `yaml:"collision_inset_x"`
	InsetY       int     `yaml:"collision_inset_y"`
}

// GoblinEnemies defines enemy movement and per-level layout.
type GoblinEnemies struct {
	BaseSpeed  float64                  `yaml:"base_speed"`
	PerLevel   float64                  `yaml:"per_level"`
	PerIndex   float64                  `yaml:"per_index"`
	EdgeMargin int                      `yaml:"edge_margin"`
	AnimEvery  int                      `yaml:"anim_every"`
	Levels     map[int]GoblinEnemyLevel `yaml:"levels"`
}

// GoblinEnemyLevel describes the enemies of one level.
type GoblinEnemyLevel struct {
	Kind      string    `yaml:"kind"`
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Positions []float64 `yaml:"positions"` // initial x as a fraction of screen width
}

// GoblinDialogue tunes dialogue pacing.
type GoblinDialogue struct {
	CooldownFrames int `yaml:"cooldown_frames"` // frames before level exits count
	OverlayUntil   int `yaml:"overlay_until"`   // level 1 lines shown over a dark overlay
}

// GoblinTutorial tunes the level 1 tutorial.
type GoblinTutorial struct {
	ReadyTicks int `yaml:"ready_ticks"`
}

// GoblinScoring defines points awarded.
type GoblinScoring struct {
	LevelClear int `yaml:"level_clear"` // multiplied by the cleared level
	Completion int `yaml:"completion"`
}

// GoblinMusic names the background tracks.
type GoblinMusic struct {
	Menu     string `yaml:"menu"`
	Gameplay string `yaml:"gameplay"`
}

// InvasionConfig contains all configuration for Alien Invasion.
type InvasionConfig struct {
	Ship       InvasionShip     `yaml:"ship"`
	Bullet     InvasionBullet   `yaml:"bullet"`
	Alien      InvasionAlien    `yaml:"alien"`
	Game       InvasionGame     `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvasionShip defines the player ship.
type InvasionShip struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// InvasionBullet defines bullets.
type InvasionBullet struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Allowed int     `yaml:"allowed"`
}

// InvasionAlien defines aliens and fleet movement.
type InvasionAlien struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	FleetDrop int     `yaml:"fleet_drop"`
	Points    int     `yaml:"points"`
}

// InvasionGame defines lives and level scaling.
type InvasionGame struct {
	ShipLimit     int     `yaml:"ship_limit"`
	SpeedupScale  float64 `yaml:"speedup_scale"`
	ScoreScale    float64 `yaml:"score_scale"`
	HitPauseTicks int     `yaml:"hit_pause_ticks"`
}

// ShieldConfig contains all configuration for Shield Toss.
type ShieldConfig struct {
	Player     ShieldPlayer     `yaml:"player"`
	Shield     ShieldThrow      `yaml:"shield"`
	Enemy      ShieldEnemy      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShieldPlayer defines the thrower.
type ShieldPlayer struct {
	Width int     `yaml:"width"`
	Speed float64 `yaml:"speed"`
}

// ShieldThrow defines the shield projectile and hit test.
type ShieldThrow struct {
	Speed     float64 `yaml:"speed"`
	HitRadius float64 `yaml:"hit_radius"`
	RowScale  float64 `yaml:"row_scale"` // weight of one row against one column
}

// ShieldEnemy defines the descending target.
type ShieldEnemy struct {
	Width      int     `yaml:"width"`
	Speed      float64 `yaml:"speed"`
	Drop       int     `yaml:"drop"`
	SpawnRows  int     `yaml:"spawn_rows"`  // enemy respawns within this many top rows
	DangerRows int     `yaml:"danger_rows"` // rows above the player that end the game
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}
