// Package game implements the brick-breaker simulation: paddle, ball,
// brick field, particles, and the orchestrating state machine. It is
// pure logic; the platform layer owns input and drawing.
package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// brickPalette holds the material colors cycled across the grid.
var brickPalette = []core.Color{
	core.ColorBrightGreen,  // emerald
	core.ColorBrightCyan,   // diamond
	core.ColorBrightYellow, // gold
	core.ColorBrightRed,    // redstone
	core.ColorBrightBlue,   // lapis
	core.ColorWhite,        // iron
}

// Brick is a single destructible cell of the brick field.
type Brick struct {
	Rect  core.Rect
	Color core.Color
	Alive bool
}

// Level is the brick field for one level index. The layout is fully
// deterministic: a centered rows x cols grid whose palette rotates by
// (row + col + index) mod len(palette). Randomness only enters through
// ball launch jitter and particle bursts, never brick placement.
type Level struct {
	Index  int
	Bricks []Brick
}

// BuildLevel generates the brick grid for a level index within the
// playfield. Zero rows or columns yields an empty level, which reports
// Cleared() immediately.
func BuildLevel(index int, play core.Rect, cfg config.BrickConfig) *Level {
	l := &Level{
		Index:  index,
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}

	totalW := float64(cfg.Cols)*cfg.Width + float64(cfg.Cols-1)*cfg.Gap
	startX := play.X + (play.W-totalW)/2

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			x := startX + float64(c)*(cfg.Width+cfg.Gap)
			y := play.Y + cfg.TopOffset + float64(r)*(cfg.Height+cfg.Gap)
			l.Bricks = append(l.Bricks, Brick{
				Rect:  core.NewRect(x, y, cfg.Width, cfg.Height),
				Color: brickPalette[(r+c+index)%len(brickPalette)],
				Alive: true,
			})
		}
	}
	return l
}

// AliveCount returns the number of remaining bricks.
func (l *Level) AliveCount() int {
	count := 0
	for i := range l.Bricks {
		if l.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// Cleared returns true iff every brick is dead.
func (l *Level) Cleared() bool {
	return l.AliveCount() == 0
}

// CollideBall resolves the ball against the brick field and returns the
// number of bricks destroyed this tick (0 or 1).
//
// The first alive brick in row-major order whose rectangle contains the
// ball's position is hit; on a hit the brick dies, a particle burst is
// emitted at its center, the reflection axis is chosen by penetration
// depth (closer to a vertical edge flips X, otherwise Y), and the
// ball's speed ramps and velocity renormalizes.
//
// Picking the first containing brick is a deliberate approximation, not
// nearest-surface collision; at most one brick dies per tick even when
// the ball overlaps several.
func (l *Level) CollideBall(ball *Ball, particles *ParticleSystem, rng *rand.Rand, speedInc, maxSpeed float64) int {
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if !b.Alive {
			continue
		}
		if !b.Rect.ContainsPoint(ball.Pos.X, ball.Pos.Y) {
			continue
		}

		b.Alive = false
		particles.Emit(rng, b.Rect.CenterX(), b.Rect.CenterY(), b.Color)

		dx := math.Min(math.Abs(ball.Pos.X-b.Rect.X), math.Abs(ball.Pos.X-b.Rect.Right()))
		dy := math.Min(math.Abs(ball.Pos.Y-b.Rect.Y), math.Abs(ball.Pos.Y-b.Rect.Bottom()))
		if dx < dy {
			ball.Vel.X = -ball.Vel.X
		} else {
			ball.Vel.Y = -ball.Vel.Y
		}

		ball.RampSpeed(speedInc, maxSpeed)
		return 1
	}
	return 0
}
