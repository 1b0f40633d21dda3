package game

import "math"

// Snapshot is a flat primitive capture of the simulation state. It
// exists for determinism testing: two runs with the same seed and the
// same input script must produce identical snapshots tick for tick.
// It is never persisted.
type Snapshot struct {
	Tick       int
	Phase      string
	Score      int
	Lives      int
	LevelIndex int

	PaddleX float64
	PaddleW float64

	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	BallSpeed float64
	Attached  bool

	BricksRemaining int
	BrickAlive      []bool

	ParticleCount int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	alive := make([]bool, len(g.level.Bricks))
	for i := range g.level.Bricks {
		alive[i] = g.level.Bricks[i].Alive
	}

	return Snapshot{
		Tick:       g.tickCount,
		Phase:      g.phase,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,

		PaddleX: g.paddle.Pos.X,
		PaddleW: g.paddle.Width,

		BallX:     g.ball.Pos.X,
		BallY:     g.ball.Pos.Y,
		BallVX:    g.ball.Vel.X,
		BallVY:    g.ball.Vel.Y,
		BallSpeed: g.ball.Speed,
		Attached:  g.ball.Attached,

		BricksRemaining: g.level.AliveCount(),
		BrickAlive:      alive,

		ParticleCount: g.particles.Count(),
	}
}

// Hash folds the snapshot into a single value for determinism tests.
// Floats are mixed in bit-exactly, so any drift shows up.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)   //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PaddleX, snap.PaddleW,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.BallSpeed,
	} {
		h = h*31 + math.Float64bits(f)
	}

	if snap.Attached {
		h = h*31 + 1
	} else {
		h = h * 31
	}

	for _, a := range snap.BrickAlive {
		if a {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	return h
}
