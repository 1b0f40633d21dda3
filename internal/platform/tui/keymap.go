package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockout/internal/core"
)

// KeyMap holds the declarative key bindings. It satisfies the
// bubbles/help KeyMap interface so the footer renders itself.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the compact help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch/pause"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages into input-frame
// actions. Centralizing the bindings keeps them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the underlying bindings for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame records the matching action in the input frame.
// Returns true when the key is a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.keys.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, km.keys.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, km.keys.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, km.keys.Launch):
		frame.Set(core.ActionLaunch)
	case key.Matches(msg, km.keys.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, km.keys.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}
