// Package config provides YAML-based configuration loading and
// difficulty presets for the game.
package config

// Config contains every gameplay constant. The simulation receives it at
// construction; nothing in the core reads ambient globals.
type Config struct {
	World     WorldConfig    `yaml:"world"`
	Paddle    PaddleConfig   `yaml:"paddle"`
	Ball      BallConfig     `yaml:"ball"`
	Bricks    BrickConfig    `yaml:"bricks"`
	Particles ParticleConfig `yaml:"particles"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
}

// WorldConfig defines the fixed world canvas and playfield framing.
// All values are in world units; the renderer projects them to cells.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Margin          float64 `yaml:"margin"`
	TopBarHeight    float64 `yaml:"top_bar_height"`
	BorderThickness float64 `yaml:"border_thickness"`
}

// PaddleConfig defines paddle geometry and motion.
type PaddleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`             // World units per second
	PointerSmoothing float64 `yaml:"pointer_smoothing"` // Exponential smoothing factor
	InsetMargin      float64 `yaml:"inset_margin"`      // Gap kept to the playfield edge
}

// BallConfig defines ball geometry and the speed ramp.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	StartSpeed     float64 `yaml:"start_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per brick hit
	MaxSpeed       float64 `yaml:"max_speed"`
	LaunchJitter   float64 `yaml:"launch_jitter"` // Max launch angle offset in radians
	BounceAngle    float64 `yaml:"bounce_angle"`  // Radians per unit of paddle offset
}

// BrickConfig defines the generated brick grid.
type BrickConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopOffset float64 `yaml:"top_offset"` // Distance below the playfield top
	Points    int     `yaml:"points"`     // Score per destroyed brick
}

// ParticleConfig defines the debris bursts emitted on brick destruction.
type ParticleConfig struct {
	BurstSize int     `yaml:"burst_size"`
	MinVX     float64 `yaml:"min_vx"`
	MaxVX     float64 `yaml:"max_vx"`
	MinVY     float64 `yaml:"min_vy"`
	MaxVY     float64 `yaml:"max_vy"`
	Gravity   float64 `yaml:"gravity"`
	MinLife   float64 `yaml:"min_life"` // Seconds
	MaxLife   float64 `yaml:"max_life"`
}

// GameplayConfig defines the match rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// Normalize clamps nonsensical values to something the simulation can
// run with. Negative grid sizes become empty levels (which report
// cleared immediately); zero lives still grants one attempt.
func (c *Config) Normalize() {
	if c.Bricks.Rows < 0 {
		c.Bricks.Rows = 0
	}
	if c.Bricks.Cols < 0 {
		c.Bricks.Cols = 0
	}
	if c.Gameplay.Lives < 1 {
		c.Gameplay.Lives = 1
	}
	if c.Ball.MaxSpeed < c.Ball.StartSpeed {
		c.Ball.MaxSpeed = c.Ball.StartSpeed
	}
	if c.Particles.BurstSize < 0 {
		c.Particles.BurstSize = 0
	}
}
