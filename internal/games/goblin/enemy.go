package goblin

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Enemy is one patrolling monster.
type Enemy struct {
	Kind   string
	X, Y   float64
	W, H   int
	Speed  float64 // cells per tick before difficulty scaling
	Dir    int     // -1 left, +1 right
	startX float64
	frames core.Animator
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(int(math.Round(e.X)), int(math.Round(e.Y)), e.W, e.H)
}

// Facing returns "left" or "right".
func (e *Enemy) Facing() string {
	if e.Dir < 0 {
		return FacingLeft
	}
	return FacingRight
}

// Frame returns the current animation frame index.
func (e *Enemy) Frame() int { return e.frames.Index() }

// Sprite returns the frame to draw.
func (e *Enemy) Sprite() []string {
	set := enemySprites[e.Kind][e.Facing()]
	if len(set) == 0 {
		return nil
	}
	return set[e.frames.Index()%len(set)]
}

// EnemySystem owns the enemies of every level.
type EnemySystem struct {
	cfg     config.GoblinEnemies
	rng     *rand.Rand
	levels  map[int][]*Enemy
	screenW int
	groundY float64 // bottom edge of the ground line

	canMove bool
	scale   float64 // difficulty multiplier applied at StartMovement
}

// NewEnemySystem lays out the enemies for every configured level.
// groundY is the row enemies stand on (their bottom edge).
func NewEnemySystem(cfg config.GoblinEnemies, rng *rand.Rand, screenW int, groundY float64) *EnemySystem {
	s := &EnemySystem{
		cfg:     cfg,
		rng:     rng,
		levels:  make(map[int][]*Enemy),
		screenW: screenW,
		groundY: groundY,
		scale:   1,
	}
	for _, level := range s.levelNumbers() {
		lc := cfg.Levels[level]
		enemies := make([]*Enemy, len(lc.Positions))
		for i := range lc.Positions {
			enemies[i] = &Enemy{
				Kind:   lc.Kind,
				W:      lc.Width,
				H:      lc.Height,
				Speed:  cfg.BaseSpeed + cfg.PerLevel*float64(level) + cfg.PerIndex*float64(i),
				frames: core.NewAnimator(len(enemySprites[lc.Kind][FacingRight]), cfg.AnimEvery),
			}
		}
		s.levels[level] = enemies
		s.layout(level)
		s.reset(level)
	}
	return s
}

// levelNumbers returns configured levels in ascending order so RNG use is stable.
func (s *EnemySystem) levelNumbers() []int {
	levels := make([]int, 0, len(s.cfg.Levels))
	for l := range s.cfg.Levels {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// layout computes initial positions from the screen size.
func (s *EnemySystem) layout(level int) {
	lc := s.cfg.Levels[level]
	for i, e := range s.levels[level] {
		maxX := math.Max(0, float64(s.screenW-e.W))
		e.startX = core.ClampF(lc.Positions[i]*float64(s.screenW), 0, maxX)
		e.Y = s.groundY - float64(e.H)
	}
}

func (s *EnemySystem) reset(level int) {
	for _, e := range s.levels[level] {
		e.X = e.startX
		if s.rng.Intn(2) == 0 {
			e.Dir = -1
		} else {
			e.Dir = 1
		}
		e.frames.Reset()
	}
}

// ResetLevel restores one level's enemies and stops movement.
func (s *EnemySystem) ResetLevel(level int) {
	s.reset(level)
	s.canMove = false
}

// ResetAll restores every level and stops movement.
func (s *EnemySystem) ResetAll() {
	for _, level := range s.levelNumbers() {
		s.reset(level)
	}
	s.canMove = false
}

// StartMovement lets the level's enemies move, scaling their speed.
func (s *EnemySystem) StartMovement(level int, scale float64) {
	if _, ok := s.levels[level]; !ok {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
	s.canMove = true
}

// CanMove reports whether enemies are moving.
func (s *EnemySystem) CanMove() bool { return s.canMove }

// Update moves the level's enemies one tick, bouncing near the edges.
func (s *EnemySystem) Update(level int) {
	if !s.canMove {
		return
	}
	margin := float64(s.cfg.EdgeMargin)
	for _, e := range s.levels[level] {
		e.X += e.Speed * s.scale * float64(e.Dir)
		if e.X+float64(e.W) >= float64(s.screenW)-margin {
			e.X = math.Max(0, float64(s.screenW)-margin-float64(e.W))
			e.Dir = -1
		} else if e.X <= margin {
			e.X = margin
			e.Dir = 1
		}
		e.frames.Tick()
	}
}

// Enemies returns the level's enemies, or nil for unknown levels.
func (s *EnemySystem) Enemies(level int) []*Enemy {
	return s.levels[level]
}

// Rects returns the level's enemy bounding boxes.
func (s *EnemySystem) Rects(level int) []core.Rect {
	enemies := s.levels[level]
	if len(enemies) == 0 {
		return nil
	}
	rects := make([]core.Rect, len(enemies))
	for i, e := range enemies {
		rects[i] = e.Rect()
	}
	return rects
}

// SetScreen recomputes initial positions for a new screen, keeping each
// enemy's relative position.
func (s *EnemySystem) SetScreen(screenW int, groundY float64) {
	oldW := s.screenW
	s.screenW = screenW
	s.groundY = groundY
	for _, level := range s.levelNumbers() {
		s.layout(level)
		for _, e := range s.levels[level] {
			if oldW > 0 {
				e.X = e.X * float64(screenW) / float64(oldW)
			}
			e.X = core.ClampF(e.X, 0, math.Max(0, float64(screenW-e.W)))
		}
	}
}
