package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockout/internal/core"
)

// Ball is the point-mass projectile. Speed is tracked separately from
// the velocity vector so the ramp can raise it independently of
// direction; after every collision response |Vel| == Speed again.
type Ball struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Speed    float64
	Radius   float64
	Attached bool // Riding the paddle, not yet launched
}

// NewBall creates a ball attached to the given paddle.
func NewBall(radius, startSpeed float64, paddle *Paddle) *Ball {
	b := &Ball{
		Speed:  startSpeed,
		Radius: radius,
	}
	b.AttachTo(paddle)
	return b
}

// AttachTo snaps the ball to the paddle's top center and zeroes velocity.
func (b *Ball) AttachTo(p *Paddle) {
	b.Pos = core.Vec2{X: p.CenterX(), Y: p.Top() - b.Radius - 1}
	b.Vel = core.Vec2{}
	b.Attached = true
}

// LaunchUp releases the ball upward with a small random angle jitter.
func (b *Ball) LaunchUp(rng *rand.Rand, jitter float64) {
	angle := (rng.Float64()*2 - 1) * jitter
	b.Vel = core.Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}.Scale(b.Speed)
	b.Attached = false
}

// Update integrates the ball and reflects it off the left, right, and
// top inner edges of the playfield. The bottom edge never reflects;
// crossing it is the orchestrator's life-loss signal.
func (b *Ball) Update(dt float64, play core.Rect) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X <= play.X+b.Radius {
		b.Pos.X = play.X + b.Radius
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.X >= play.Right()-b.Radius {
		b.Pos.X = play.Right() - b.Radius
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y <= play.Y+b.Radius {
		b.Pos.Y = play.Y + b.Radius
		b.Vel.Y = -b.Vel.Y
	}
}

// ReflectFromPaddle bounces the ball off the paddle when it is moving
// downward through the paddle's extent. The bounce angle is steered by
// where on the paddle the ball landed: center hits go straight up, edge
// hits go out at up to bounceAngle radians. Returns true on a hit.
func (b *Ball) ReflectFromPaddle(p *Paddle, bounceAngle float64) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	rect := p.Rect()
	if b.Pos.Y < rect.Y-b.Radius || b.Pos.Y > rect.Bottom()+b.Radius {
		return false
	}
	if b.Pos.X < rect.X-b.Radius || b.Pos.X > rect.Right()+b.Radius {
		return false
	}

	offset := core.ClampF((b.Pos.X-p.CenterX())/(p.Width/2), -1, 1)
	angle := offset * bounceAngle
	b.Vel = core.Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}.Scale(b.Speed)

	// Nudge above the paddle top to prevent re-triggering next tick
	b.Pos.Y = rect.Y - b.Radius - 1
	return true
}

// RampSpeed raises the scalar speed by inc up to max and renormalizes
// velocity so |Vel| == Speed.
func (b *Ball) RampSpeed(inc, max float64) {
	b.Speed = math.Min(max, b.Speed+inc)
	b.Renormalize()
}

// Renormalize rescales velocity to the current scalar speed, keeping
// direction. A zero velocity stays zero.
func (b *Ball) Renormalize() {
	b.Vel = b.Vel.Normalize().Scale(b.Speed)
}
