package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fishies"
	"github.com/vovakirdan/flappy-fish/internal/platform/style"
)

// Model is the Bubble Tea model running one Flappy Fish session.
//
// In background mode a timer drives ticks and the last key pressed in
// between is applied on the next one. In foreground mode every key ticks
// at once. Command mode hands keys to a text input until Enter.
type Model struct {
	sess    *fishies.Session
	frame   *core.Screen
	palette style.Palette
	keys    KeyMap
	help    help.Model
	input   textinput.Model

	pending  fishies.Input
	gen      int // bumped whenever background timers must be cancelled
	started  bool
	quitting bool
	err      error

	onExit func() // called once when the game ends
}

// NewModel creates a model for sess rendering with palette.
func NewModel(sess *fishies.Session, palette style.Palette) Model {
	ti := textinput.New()
	ti.Prompt = fishies.Prompt + " "
	ti.CharLimit = 64
	ti.Width = 32

	return Model{
		sess:    sess,
		frame:   fishies.NewFrame(),
		palette: palette,
		keys:    NewKeyMap(sess.Keys()),
		help:    help.New(),
		input:   ti,
	}
}

// Init does nothing: the session starts once the first window size has
// passed the size check.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if msg.gen != m.gen || m.quitting {
			return m, nil
		}
		res, ticked := m.sess.Poll(m.sess.Now(), m.pending)
		if !ticked {
			return m, m.scheduleTick()
		}
		m.pending = fishies.Input{}
		return m.afterTick(res)
	}

	if m.sess.Mode() == fishies.ModeCommand {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize checks the first window size and starts the session if it
// fits. The game keeps its fixed playfield, so later resizes are ignored.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if m.started {
		return m, nil
	}
	if err := fishies.CheckTerminalSize(msg.Height, msg.Width); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.started = true
	return m.afterTick(m.sess.Start())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	ch := m.keys.MapKey(msg)
	if m.sess.Intercept(ch) {
		return m.finish()
	}
	if !m.started {
		return m, nil
	}

	if m.sess.Mode() == fishies.ModeCommand {
		if msg.Type != tea.KeyEnter {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		line := m.input.Value()
		m.input.Reset()
		return m.tickNow(fishies.LineInput(line))
	}

	if ch == core.NoInput {
		return m, nil
	}
	if m.sess.Background() {
		m.pending = fishies.KeyInput(ch)
		return m, nil
	}
	return m.tickNow(fishies.KeyInput(ch))
}

// tickNow runs a foreground tick for in.
func (m Model) tickNow(in fishies.Input) (tea.Model, tea.Cmd) {
	res, ticked := m.sess.Poll(m.sess.Now(), in)
	if !ticked {
		m.pending = in
		return m, nil
	}
	m.pending = fishies.Input{}
	return m.afterTick(res)
}

// afterTick reacts to a finished tick: ends the program, switches the
// text input on or off and restarts or cancels the background timer.
func (m Model) afterTick(res fishies.TickResult) (tea.Model, tea.Cmd) {
	if m.sess.Done() {
		return m.finish()
	}

	var cmds []tea.Cmd
	if m.sess.Mode() == fishies.ModeCommand {
		if !m.input.Focused() {
			cmds = append(cmds, m.input.Focus())
		}
	} else if m.input.Focused() {
		m.input.Blur()
	}

	if res.BackgroundChanged {
		m.gen++
	}
	if m.sess.Background() {
		cmds = append(cmds, m.scheduleTick())
	}
	return m, tea.Batch(cmds...)
}

// finish stops the program after the session ended.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.onExit != nil {
		m.onExit()
	}
	return m, tea.Quit
}

// scheduleTick arms a timer for the next background tick.
func (m Model) scheduleTick() tea.Cmd {
	return tickCmd(m.gen, m.sess.Remaining())
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.sess.Render(m.frame)

	dir := filepath.Join(os.Getenv("HOME"), ".fishies", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("fishies_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.frame.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || !m.started {
		return ""
	}

	m.sess.Render(m.frame)
	lines := strings.Split(m.palette.RenderScreen(m.frame), "\n")

	if m.sess.Mode() == fishies.ModeCommand && fishies.PromptRow < len(lines) {
		row := strings.Repeat(" ", fishies.PromptCol) + m.input.View()
		if pad := m.frame.Width() - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		lines[fishies.PromptRow] = row
	}

	return strings.Join(lines, "\n") + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for sess on the local terminal.
func Run(sess *fishies.Session) error {
	model := NewModel(sess, style.NewPalette(nil))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
