package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// Game phases.
const (
	PhaseAttached = "attached" // Ball riding the paddle, waiting for launch
	PhasePlaying  = "playing"  // Ball in flight
	PhasePaused   = "paused"   // Simulation frozen
	PhaseGameOver = "gameover" // No lives left
)

// Game is the orchestrator: it owns every entity, the phase machine,
// and score/lives/level bookkeeping. All state advances through Step;
// there are no goroutines and no locks — the platform layer calls Step
// from its single frame loop.
type Game struct {
	cfg config.Config
	rt  core.RuntimeConfig
	rng *rand.Rand

	play core.Rect // Playfield interior (inner edge of the border)

	paddle    *Paddle
	ball      *Ball
	level     *Level
	particles *ParticleSystem

	phase      string
	score      int
	lives      int
	levelIndex int
	tickCount  int
}

// New creates a game with the given tunables. Call Reset before the
// first Step.
func New(cfg config.Config) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg}
}

// Reset initializes or restarts the game from the runtime config. The
// RNG is seeded from rt.Seed, so a fresh Reset with the same seed and
// the same input script replays identically.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	w := g.cfg.World
	g.play = core.NewRect(
		w.Margin+w.BorderThickness,
		w.TopBarHeight+w.Margin+w.BorderThickness,
		w.Width-2*(w.Margin+w.BorderThickness),
		w.Height-(w.TopBarHeight+2*(w.Margin+w.BorderThickness)),
	)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = 0
	g.tickCount = 0

	g.level = BuildLevel(g.levelIndex, g.play, g.cfg.Bricks)
	g.paddle = NewPaddle(g.cfg.Paddle, g.play)
	g.ball = NewBall(g.cfg.Ball.Radius, g.cfg.Ball.StartSpeed, g.paddle)
	g.particles = NewParticleSystem(g.cfg.Particles)
	g.phase = PhaseAttached
}

// restart rebuilds the round but keeps the RNG stream, so a restart
// mid-game does not replay the previous game's launch angles.
func (g *Game) restart() {
	rng := g.rng
	g.Reset(g.rt)
	g.rng = rng
}

// Step advances the simulation by dt seconds under the given input
// snapshot. Non-finite dt is treated as zero and dt is clamped to
// [0, 0.1] so a stalled terminal cannot tunnel the ball through
// geometry.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tickCount++

	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	dt = core.ClampF(dt, 0, 0.1)

	// Restart works from any phase.
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Launch doubles as pause toggle once the ball is free; a
	// dedicated pause action does the same without launching.
	if in.Has(core.ActionLaunch) {
		switch g.phase {
		case PhaseAttached:
			g.ball.LaunchUp(g.rng, g.cfg.Ball.LaunchJitter)
			g.phase = PhasePlaying
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	} else if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	}

	if g.phase == PhasePaused || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir -= 1
	}
	if in.Has(core.ActionRight) {
		dir += 1
	}
	pointerX, hasPointer := in.Pointer()
	g.paddle.Update(dt, dir, pointerX, hasPointer, g.play)

	if g.phase == PhaseAttached {
		g.ball.AttachTo(g.paddle)
	} else {
		g.ball.Update(dt, g.play)
		g.ball.ReflectFromPaddle(g.paddle, g.cfg.Ball.BounceAngle)

		destroyed := g.level.CollideBall(g.ball, g.particles, g.rng,
			g.cfg.Ball.SpeedIncrement, g.cfg.Ball.MaxSpeed)
		g.score += destroyed * g.cfg.Bricks.Points

		if g.ball.Pos.Y >= g.play.Bottom()-g.ball.Radius {
			g.loseLife()
		}
	}

	// Score is already credited, so a clear on the last life's final
	// brick still counts before any transition. An empty grid (zero
	// rows or cols in config) never advances.
	if len(g.level.Bricks) > 0 && g.level.Cleared() {
		g.advanceLevel()
	}

	g.particles.Update(dt)

	return core.StepResult{State: g.State()}
}

// loseLife handles the ball crossing the bottom boundary. The ball
// re-attaches either way; with no lives left the phase locks to
// gameover and only restart acts.
func (g *Game) loseLife() {
	g.lives--
	g.ball.Speed = g.cfg.Ball.StartSpeed
	g.ball.AttachTo(g.paddle)

	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseAttached
}

// advanceLevel moves to the next level index, rebuilds the brick grid,
// and re-serves the ball at the starting speed.
func (g *Game) advanceLevel() {
	g.levelIndex++
	g.level = BuildLevel(g.levelIndex, g.play, g.cfg.Bricks)
	g.ball.Speed = g.cfg.Ball.StartSpeed
	g.ball.AttachTo(g.paddle)
	if g.phase != PhaseGameOver {
		g.phase = PhaseAttached
	}
}

// State returns the HUD-facing game state. Level is 1-based.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex + 1,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current phase string.
func (g *Game) Phase() string {
	return g.phase
}

// WorldSize returns the world canvas dimensions in world units.
func (g *Game) WorldSize() (w, h float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Playfield returns the playfield interior rectangle.
func (g *Game) Playfield() core.Rect {
	return g.play
}
