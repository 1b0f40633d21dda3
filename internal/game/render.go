package game

import (
	"fmt"

	"github.com/vovakirdan/blockout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	BrickChar    = '█'
	ParticleFull = '▪'
	ParticleDim  = '·'
	SeparatorH   = '─'
)

// Minimum terminal size for a playable projection.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// projection maps world units onto screen cells. The world canvas is
// fixed; only the scale changes when the terminal resizes.
type projection struct {
	sx, sy float64
}

func newProjection(worldW, worldH float64, screenW, screenH int) projection {
	return projection{
		sx: float64(screenW) / worldW,
		sy: float64(screenH) / worldH,
	}
}

func (p projection) cellX(x float64) int { return int(x * p.sx) }
func (p projection) cellY(y float64) int { return int(y * p.sy) }

// Render draws the full frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	proj := newProjection(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())

	g.renderHUD(dst)
	g.renderBorder(dst, proj)
	g.renderBricks(dst, proj)
	g.renderParticles(dst, proj)
	g.renderPaddle(dst, proj)
	g.renderBall(dst, proj)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, and level on the top row, with a
// separator line under it.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColored((dst.Width()-len(lives))/2, 0, lives, core.ColorBrightWhite)

	level := fmt.Sprintf("Level: %d", g.levelIndex+1)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorBrightWhite)

	dst.DrawHLine(0, 1, dst.Width(), SeparatorH, core.ColorGray)
}

// renderBorder draws the playfield frame one cell outside the interior,
// so reflections visually happen on the frame's inner edge.
func (g *Game) renderBorder(dst *core.Screen, proj projection) {
	x0 := proj.cellX(g.play.X) - 1
	y0 := proj.cellY(g.play.Y) - 1
	x1 := proj.cellX(g.play.Right()) + 1
	y1 := proj.cellY(g.play.Bottom()) + 1
	dst.DrawBox(x0, y0, x1-x0+1, y1-y0+1, core.ColorGreen)
}

// renderBricks draws every alive brick as a colored block run.
func (g *Game) renderBricks(dst *core.Screen, proj projection) {
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if !b.Alive {
			continue
		}

		x0 := proj.cellX(b.Rect.X)
		x1 := proj.cellX(b.Rect.Right() - 1)
		y0 := proj.cellY(b.Rect.Y)
		y1 := proj.cellY(b.Rect.Bottom() - 1)
		// A brick always occupies at least one cell
		if x1 < x0 {
			x1 = x0
		}
		if y1 < y0 {
			y1 = y0
		}

		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				dst.SetCell(cx, cy, BrickChar, b.Color)
			}
		}
	}
}

// renderParticles draws live particles, dimming the glyph once a
// particle has burned through half its lifetime.
func (g *Game) renderParticles(dst *core.Screen, proj projection) {
	for _, p := range g.particles.Particles() {
		var glyph rune = ParticleDim
		if p.MaxLife > 0 && p.Life/p.MaxLife >= 0.5 {
			glyph = ParticleFull
		}
		dst.SetCell(proj.cellX(p.Pos.X), proj.cellY(p.Pos.Y), glyph, p.Color)
	}
}

// renderPaddle draws the paddle as a run of '=' on its row.
func (g *Game) renderPaddle(dst *core.Screen, proj projection) {
	y := proj.cellY(g.paddle.Pos.Y)
	x0 := proj.cellX(g.paddle.Pos.X)
	x1 := proj.cellX(g.paddle.Pos.X + g.paddle.Width - 1)
	if x1 < x0 {
		x1 = x0
	}
	for x := x0; x <= x1; x++ {
		dst.SetCell(x, y, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, proj projection) {
	dst.SetCell(proj.cellX(g.ball.Pos.X), proj.cellY(g.ball.Pos.Y), BallChar, core.ColorBrightYellow)
}

// renderOverlay draws phase-dependent messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseAttached:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press SPACE to resume")
	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a bordered message box in the screen center.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
