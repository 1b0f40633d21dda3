package game

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

const stepDT = 1.0 / 60

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestInitialState(t *testing.T) {
	g := newTestGame(1)

	if g.Phase() != PhaseAttached {
		t.Errorf("phase = %s, expected attached", g.Phase())
	}
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("state = %+v, expected score 0, lives 3, level 1", st)
	}
	if got, want := g.level.AliveCount(), 6*9; got != want {
		t.Errorf("bricks = %d, expected %d", got, want)
	}
}

func TestLaunch(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)

	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", g.Phase())
	}
	if g.ball.Attached {
		t.Error("ball should be free after launch")
	}
	if got := g.ball.Vel.Len(); math.Abs(got-g.cfg.Ball.StartSpeed) > 1e-9 {
		t.Errorf("|vel| = %f, expected start speed %f", got, g.cfg.Ball.StartSpeed)
	}
}

func TestLaunchTogglesPause(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)
	g.Step(frame(core.ActionLaunch), stepDT)

	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %s, expected paused after second launch press", g.Phase())
	}

	// Frozen: nothing moves while paused
	pos := g.ball.Pos
	for i := 0; i < 10; i++ {
		g.Step(frame(), stepDT)
	}
	if g.ball.Pos != pos {
		t.Errorf("ball moved while paused: %+v -> %+v", pos, g.ball.Pos)
	}

	g.Step(frame(core.ActionLaunch), stepDT)
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing after resume", g.Phase())
	}
}

func TestPauseActionOnlyWhileInPlay(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionPause), stepDT)
	if g.Phase() != PhaseAttached {
		t.Errorf("pause before launch should be a no-op, phase = %s", g.Phase())
	}

	g.Step(frame(core.ActionLaunch), stepDT)
	g.Step(frame(core.ActionPause), stepDT)
	if g.Phase() != PhasePaused {
		t.Errorf("phase = %s, expected paused", g.Phase())
	}
	g.Step(frame(core.ActionPause), stepDT)
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected resumed", g.Phase())
	}
}

func TestAttachedBallFollowsPaddle(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight), stepDT)
	}
	if g.ball.Pos.X != g.paddle.CenterX() {
		t.Errorf("attached ball X = %f, expected paddle center %f", g.ball.Pos.X, g.paddle.CenterX())
	}
}

func TestLifeLoss(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)

	// Drive the ball through the bottom boundary
	g.ball.Pos = core.Vec2{X: g.play.CenterX(), Y: g.play.Bottom()}
	g.ball.Vel = core.Vec2{X: 0, Y: g.ball.Speed}
	g.ball.Speed = 500
	g.Step(frame(), stepDT)

	st := g.State()
	if st.Lives != 2 {
		t.Errorf("lives = %d, expected 2", st.Lives)
	}
	if g.Phase() != PhaseAttached {
		t.Errorf("phase = %s, expected re-attached after miss", g.Phase())
	}
	if !g.ball.Attached {
		t.Error("ball should ride the paddle after a miss")
	}
	if g.ball.Speed != g.cfg.Ball.StartSpeed {
		t.Errorf("speed = %f, expected reset to start speed", g.ball.Speed)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)
	g.score = 250
	g.lives = 1

	g.ball.Pos = core.Vec2{X: g.play.CenterX(), Y: g.play.Bottom()}
	g.ball.Vel = core.Vec2{X: 0, Y: g.ball.Speed}
	g.Step(frame(), stepDT)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover on last life", g.Phase())
	}
	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Errorf("state = %+v, expected game over with zero lives", st)
	}
	if !g.ball.Attached {
		t.Error("ball should re-attach on the final miss")
	}

	// Launch is dead in gameover; only restart revives
	g.Step(frame(core.ActionLaunch), stepDT)
	if g.Phase() != PhaseGameOver {
		t.Error("launch should do nothing after game over")
	}

	g.Step(frame(core.ActionRestart), stepDT)
	st = g.State()
	if g.Phase() != PhaseAttached || st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("restart should reset the round, phase = %s, state = %+v", g.Phase(), st)
	}
}

func TestRestartFromAnyPhase(t *testing.T) {
	phases := []struct {
		name  string
		setup func(g *Game)
	}{
		{"attached", func(g *Game) {}},
		{"playing", func(g *Game) { g.Step(frame(core.ActionLaunch), stepDT) }},
		{"paused", func(g *Game) {
			g.Step(frame(core.ActionLaunch), stepDT)
			g.Step(frame(core.ActionPause), stepDT)
		}},
	}

	for _, tc := range phases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			tc.setup(g)
			g.score = 99
			g.Step(frame(core.ActionRestart), stepDT)
			if g.Phase() != PhaseAttached || g.State().Score != 0 {
				t.Errorf("restart from %s: phase = %s, score = %d", tc.name, g.Phase(), g.State().Score)
			}
		})
	}
}

func TestBrickHitScoresBeforeClearCheck(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)

	// Leave a single brick and put the ball inside it
	for i := range g.level.Bricks[1:] {
		g.level.Bricks[i+1].Alive = false
	}
	last := g.level.Bricks[0].Rect
	g.ball.Pos = core.Vec2{X: last.CenterX(), Y: last.CenterY()}
	g.ball.Vel = core.Vec2{X: 0, Y: -g.ball.Speed}

	before := g.State().Score
	g.Step(frame(), stepDT)
	st := g.State()

	if st.Score != before+g.cfg.Bricks.Points {
		t.Errorf("score = %d, expected the final brick credited before the clear", st.Score)
	}
	if st.Level != 2 {
		t.Errorf("level = %d, expected advance to 2", st.Level)
	}
	if g.Phase() != PhaseAttached {
		t.Errorf("phase = %s, expected re-serve after clear", g.Phase())
	}
	if got, want := g.level.AliveCount(), 6*9; got != want {
		t.Errorf("rebuilt level has %d bricks, expected %d", got, want)
	}
	if g.ball.Speed != g.cfg.Ball.StartSpeed {
		t.Errorf("speed = %f, expected reset for the new level", g.ball.Speed)
	}
}

func TestDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		switch {
		case tick == 10:
			return frame(core.ActionLaunch)
		case tick >= 20 && tick < 60:
			return frame(core.ActionRight)
		case tick >= 80 && tick < 120:
			return frame(core.ActionLeft)
		default:
			return frame()
		}
	}

	run := func(seed int64) uint64 {
		g := newTestGame(seed)
		for tick := 0; tick < 400; tick++ {
			g.Step(script(tick), stepDT)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(42), run(42); a != b {
		t.Errorf("same seed and script should replay identically: %d != %d", a, b)
	}
}

func TestStepDtGuard(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		g := newTestGame(1)
		g.Step(frame(core.ActionLaunch), stepDT)
		pos := g.ball.Pos
		score := g.score

		g.Step(frame(), bad)

		if g.ball.Pos != pos {
			t.Errorf("dt %f: ball moved %+v -> %+v, expected frozen", bad, pos, g.ball.Pos)
		}
		if g.score != score {
			t.Errorf("dt %f: score changed", bad)
		}
	}
}

func TestStepDtClamp(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionLaunch), stepDT)

	// A stall delivers a giant dt; the clamp keeps the ball inside the
	// world instead of tunneling through the border.
	for i := 0; i < 50; i++ {
		g.Step(frame(), 30.0)
		if g.Phase() != PhasePlaying {
			break
		}
		if g.ball.Pos.X < g.play.X || g.ball.Pos.X > g.play.Right() {
			t.Fatalf("ball escaped horizontally at X = %f", g.ball.Pos.X)
		}
		if g.ball.Pos.Y < g.play.Y {
			t.Fatalf("ball escaped through the top at Y = %f", g.ball.Pos.Y)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "Press SPACE to launch"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.ContainsRune(out, BrickChar) {
		t.Error("frame should show bricks")
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("frame should show the ball")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("tiny terminal should show the size hint")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(1)
	g.phase = PhaseGameOver
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("gameover overlay missing")
	}
}
