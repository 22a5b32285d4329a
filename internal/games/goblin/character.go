package goblin

import (
	"math"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Facing directions.
const (
	FacingLeft  = "left"
	FacingRight = "right"
)

// Character is Shinji, the player-controlled goblin.
type Character struct {
	X, Y float64 // top-left corner in cells
	W, H int

	speed     float64
	jumpPower float64
	gravity   float64
	groundY   float64 // Y while standing
	screenW   int

	vel     float64
	jumping bool
	facing  string
	anim    string
	frames  core.Animator
}

// NewCharacter creates a character standing at x on the ground.
func NewCharacter(cfg config.GoblinCharacter, screenW int, groundY float64, x float64) *Character {
	c := &Character{
		W:         cfg.Width,
		H:         cfg.Height,
		speed:     cfg.Speed,
		jumpPower: cfg.JumpPower,
		gravity:   cfg.Gravity,
		screenW:   screenW,
		groundY:   groundY,
		facing:    FacingRight,
		frames:    core.NewAnimator(0, cfg.AnimEvery),
	}
	c.Place(x)
	return c
}

// Place puts the character on the ground at x, idle in its last facing.
func (c *Character) Place(x float64) {
	c.X = c.clampX(x)
	c.Y = c.groundY
	c.vel = 0
	c.jumping = false
	c.setAnim("idle_" + c.facing)
}

func (c *Character) maxX() float64 {
	return math.Max(0, float64(c.screenW-c.W))
}

func (c *Character) clampX(x float64) float64 {
	return core.ClampF(x, 0, c.maxX())
}

// Jump starts a jump when the character is on the ground.
func (c *Character) Jump() bool {
	if c.jumping {
		return false
	}
	c.jumping = true
	c.vel = c.jumpPower
	return true
}

// Update applies one tick of horizontal input (-1, 0, +1) and gravity.
// It returns whether the character moved horizontally.
func (c *Character) Update(dir int) bool {
	moving := dir != 0
	if moving {
		c.X += c.speed * float64(dir)
		if dir < 0 {
			c.facing = FacingLeft
		} else {
			c.facing = FacingRight
		}
	}
	c.X = c.clampX(c.X)

	if c.jumping {
		c.vel += c.gravity
		c.Y += c.vel
		if c.Y >= c.groundY {
			c.Y = c.groundY
			c.jumping = false
			c.vel = 0
		}
	}

	var target string
	switch {
	case c.jumping:
		target = "jump_" + c.facing
	case moving:
		target = c.facing
	default:
		target = "idle_" + c.facing
	}
	if target != c.anim {
		c.setAnim(target)
	}

	if c.jumping || moving {
		c.frames.Tick()
	} else {
		c.frames.Reset()
	}
	return moving
}

func (c *Character) setAnim(name string) {
	c.anim = name
	c.frames.SetFrames(len(characterSprites[name]))
}

// Rect returns the character's bounding box on the cell grid.
func (c *Character) Rect() core.Rect {
	return core.NewRect(int(math.Round(c.X)), int(math.Round(c.Y)), c.W, c.H)
}

// AtRightEdge reports whether the character touches the right screen edge.
func (c *Character) AtRightEdge() bool {
	return c.X >= c.maxX()
}

// AtLeftEdge reports whether the character touches the left screen edge.
func (c *Character) AtLeftEdge() bool {
	return c.X <= 0
}

// HoldRight pins the character to the right edge.
func (c *Character) HoldRight() {
	c.X = c.maxX()
}

// Jumping reports whether the character is airborne.
func (c *Character) Jumping() bool { return c.jumping }

// Facing returns the last horizontal direction.
func (c *Character) Facing() string { return c.facing }

// Animation returns the current animation set name.
func (c *Character) Animation() string { return c.anim }

// Frame returns the current frame index within the animation set.
func (c *Character) Frame() int { return c.frames.Index() }

// Sprite returns the frame to draw.
func (c *Character) Sprite() []string {
	set := characterSprites[c.anim]
	if len(set) == 0 {
		set = characterSprites["idle_right"]
	}
	return set[c.frames.Index()%len(set)]
}

// SetScreen adapts to a new screen width and ground line, keeping the
// character's height above the ground.
func (c *Character) SetScreen(screenW int, groundY float64) {
	lift := c.groundY - c.Y
	c.screenW = screenW
	c.groundY = groundY
	c.Y = groundY - lift
	c.X = c.clampX(c.X)
}
