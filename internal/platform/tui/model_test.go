package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fishies"
	"github.com/vovakirdan/flappy-fish/internal/platform/style"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// fits is a window large enough for the playfield.
var fits = tea.WindowSizeMsg{Width: 120, Height: 45}

func newIdleModel(background bool) (Model, *fishies.Session, *core.ManualClock) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sess := fishies.NewSession(fishies.Options{
		Rand:       core.NewRand(1),
		Clock:      clock,
		Background: background,
	})
	return NewModel(sess, style.NewPalette(nil)), sess, clock
}

func newTestModel(background bool) (Model, *fishies.Session, *core.ManualClock) {
	m, sess, clock := newIdleModel(background)
	updated, _ := m.Update(fits)
	return updated.(Model), sess, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return next, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMapKey(t *testing.T) {
	km := NewKeyMap(fishies.DefaultKeys())
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected byte
	}{
		{"rune w", runeKey('w'), 'w'},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, 'w'},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, 's'},
		{"rune o", runeKey('o'), 'o'},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyInterrupt},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyReturn},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.KeyDelete},
		{"non-ascii", runeKey('é'), core.NoInput},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.NoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestModelStartCreatesFish(t *testing.T) {
	_, sess, _ := newTestModel(false)
	if sess.Ticks() != 1 || !sess.Fish().Alive {
		t.Errorf("after start: ticks = %d alive = %v, expected 1 true", sess.Ticks(), sess.Fish().Alive)
	}
}

func TestModelForegroundKeyTicks(t *testing.T) {
	m, sess, _ := newTestModel(false)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if sess.Ticks() != 3 {
		t.Errorf("ticks = %d, expected 3", sess.Ticks())
	}
	if row := sess.Fish().Position.Row; row != fishies.FishSpawnRow-2 {
		t.Errorf("fish row = %d, expected %d", row, fishies.FishSpawnRow-2)
	}
	if m.View() == "" {
		t.Error("View() empty while playing")
	}
}

func TestModelCommandMode(t *testing.T) {
	m, sess, _ := newTestModel(false)

	m, _ = update(t, m, runeKey('o'))
	if sess.Mode() != fishies.ModeCommand {
		t.Fatalf("mode = %v, expected command", sess.Mode())
	}
	ticks := sess.Ticks()

	for _, r := range "resume" {
		m, _ = update(t, m, runeKey(r))
	}
	if sess.Ticks() != ticks {
		t.Errorf("typing ticked the game: %d -> %d", ticks, sess.Ticks())
	}
	if m.input.Value() != "resume" {
		t.Errorf("input = %q, expected \"resume\"", m.input.Value())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sess.Mode() != fishies.ModeNormal {
		t.Errorf("mode = %v, expected normal", sess.Mode())
	}
	if m.input.Value() != "" || m.input.Focused() {
		t.Errorf("input = %q focused = %v, expected cleared and blurred", m.input.Value(), m.input.Focused())
	}
}

func TestModelQuitKey(t *testing.T) {
	m, sess, _ := newTestModel(true)

	exited := false
	m.onExit = func() { exited = true }

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q did not quit the program")
	}
	if !sess.Done() || !exited {
		t.Errorf("Done() = %v onExit called = %v", sess.Done(), exited)
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, sess, _ := newIdleModel(false)
	if cmd := m.Init(); cmd != nil {
		t.Fatal("Init() should not start anything before the window size is known")
	}

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !isQuit(cmd) {
		t.Error("too small window did not quit")
	}
	if !errors.Is(m.Err(), fishies.ErrTerminalTooSmall) {
		t.Errorf("Err() = %v, expected ErrTerminalTooSmall", m.Err())
	}
	if sess.Ticks() != 0 || sess.Fish().Alive {
		t.Errorf("ticks = %d, fish alive = %v: game ran in a too small window", sess.Ticks(), sess.Fish().Alive)
	}
}

func TestModelWaitsForWindowSize(t *testing.T) {
	m, sess, _ := newIdleModel(false)

	m, _ = update(t, m, runeKey('w'))
	if sess.Ticks() != 0 {
		t.Fatalf("key ticked before the window size was checked: ticks = %d", sess.Ticks())
	}
	if m.View() != "" {
		t.Error("View() drew a frame before the game started")
	}

	m, _ = update(t, m, fits)
	if sess.Ticks() != 1 || !sess.Fish().Alive {
		t.Fatalf("ticks = %d, fish alive = %v, expected the bootstrap tick", sess.Ticks(), sess.Fish().Alive)
	}

	// Later resizes neither re-check nor restart.
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if isQuit(cmd) || m.Err() != nil || sess.Ticks() != 1 {
		t.Errorf("resize after start: quit = %v err = %v ticks = %d", isQuit(cmd), m.Err(), sess.Ticks())
	}
}

func TestModelBackgroundTimer(t *testing.T) {
	m, sess, clock := newTestModel(true)
	staleGen := m.gen

	// Keys wait for the timer in background mode.
	m, _ = update(t, m, runeKey('b'))
	if sess.Ticks() != 1 {
		t.Fatalf("key ticked immediately in background mode")
	}

	clock.Advance(100 * time.Millisecond)
	m, _ = update(t, m, TickMsg{gen: m.gen, Time: clock.Now()})
	if sess.Ticks() != 2 || sess.Background() {
		t.Fatalf("ticks = %d background = %v, expected 2 false", sess.Ticks(), sess.Background())
	}
	if m.gen == staleGen {
		t.Fatal("generation not bumped on mode change")
	}

	clock.Advance(time.Second)
	_, _ = update(t, m, TickMsg{gen: staleGen, Time: clock.Now()})
	if sess.Ticks() != 2 {
		t.Errorf("stale timer ticked the game: ticks = %d", sess.Ticks())
	}
}
