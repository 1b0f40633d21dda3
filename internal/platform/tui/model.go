package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/game"
)

// Model is the Bubble Tea model driving the game loop. Each TickMsg
// advances the simulation by the measured wall-clock delta, so the
// game speed is independent of the frame rate.
type Model struct {
	game   *game.Game
	screen *core.Screen
	config core.RuntimeConfig

	keys *KeyMapper
	help help.Model

	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight reserves the bottom terminal row for the help footer.
func gameHeight(screenH int) int {
	if screenH <= 1 {
		return 1
	}
	return screenH - 1
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse projects pointer motion into world coordinates and
// records it in the pending frame. The pointer overrides keyboard
// movement for that frame.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.config.ScreenW <= 0 {
		return m, nil
	}
	worldW, _ := m.game.WorldSize()
	m.inputFrame.SetPointer(float64(msg.X) * worldW / float64(m.config.ScreenW))
	return m, nil
}

// handleResize adapts the screen buffer. The simulation runs in fixed
// world units, so a resize only changes the projection, never the
// game state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	return m, nil
}

// handleTick advances the simulation by the measured wall-clock delta.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Each tick sees exactly one input snapshot
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
