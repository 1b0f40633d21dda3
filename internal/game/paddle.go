package game

import (
	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// Paddle is the player-controlled bat at the bottom of the playfield.
// It only ever moves horizontally.
type Paddle struct {
	Pos    core.Vec2 // Top-left corner
	Width  float64
	Height float64

	speed     float64 // Keyboard speed in world units per second
	smoothing float64 // Pointer snap factor
	inset     float64 // Gap kept to the playfield edges
}

// NewPaddle creates a paddle centered at the bottom of the playfield.
func NewPaddle(cfg config.PaddleConfig, play core.Rect) *Paddle {
	return &Paddle{
		Pos: core.Vec2{
			X: play.CenterX() - cfg.Width/2,
			Y: play.Bottom() - 40,
		},
		Width:     cfg.Width,
		Height:    cfg.Height,
		speed:     cfg.Speed,
		smoothing: cfg.PointerSmoothing,
		inset:     cfg.InsetMargin,
	}
}

// Update advances the paddle by one tick. dir is the directional input
// (-1 left, 0 none, +1 right). A pointer x-coordinate, when present,
// overrides directional input: the paddle center chases it with
// exponential smoothing. The position is clamped so the paddle stays
// fully inside the playfield with a small inset.
func (p *Paddle) Update(dt, dir, pointerX float64, hasPointer bool, play core.Rect) {
	if hasPointer {
		target := pointerX - p.Width/2
		p.Pos.X += (target - p.Pos.X) * core.ClampF(dt*p.smoothing, 0, 1)
	} else {
		p.Pos.X += dir * p.speed * dt
	}

	leftLimit := play.X + p.inset
	rightLimit := play.Right() - p.Width - p.inset
	p.Pos.X = core.ClampF(p.Pos.X, leftLimit, rightLimit)
}

// CenterX returns the x-coordinate of the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.Pos.X + p.Width/2
}

// Top returns the y-coordinate of the paddle's top edge.
func (p *Paddle) Top() float64 {
	return p.Pos.Y
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}
