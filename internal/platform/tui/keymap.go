package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fishies"
)

// KeyMap holds the key bindings shown in the help footer and used to
// translate Bubble Tea key messages into game input bytes.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Command    key.Binding
	Quit       key.Binding
	Screenshot key.Binding

	keys fishies.Keys
}

// NewKeyMap builds bindings from the game keys. Arrow keys double as up/down.
func NewKeyMap(k fishies.Keys) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(string(rune(k.Up)), "up"),
			key.WithHelp(string(rune(k.Up))+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(string(rune(k.Down)), "down"),
			key.WithHelp(string(rune(k.Down))+"/↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(string(rune(k.ToggleBackground))),
			key.WithHelp(string(rune(k.ToggleBackground)), "pause/run"),
		),
		Command: key.NewBinding(
			key.WithKeys(string(rune(k.Command))),
			key.WithHelp(string(rune(k.Command)), "command"),
		),
		Quit: key.NewBinding(
			key.WithKeys(string(rune(k.Quit)), "ctrl+c"),
			key.WithHelp(string(rune(k.Quit)), "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		keys: k,
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Command, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp(), {km.Screenshot}}
}

// MapKey translates a key message to the byte a raw terminal would have
// sent. Keys with no meaning to the game map to core.NoInput.
func (km KeyMap) MapKey(msg tea.KeyMsg) byte {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return core.KeyInterrupt
	case key.Matches(msg, km.Up):
		return km.keys.Up
	case key.Matches(msg, km.Down):
		return km.keys.Down
	}

	switch msg.Type {
	case tea.KeyEnter:
		return core.KeyReturn
	case tea.KeyBackspace:
		return core.KeyDelete
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] < 0x80 && !msg.Alt {
			return byte(msg.Runes[0])
		}
	case tea.KeySpace:
		return ' '
	}
	return core.NoInput
}
