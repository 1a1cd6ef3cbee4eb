// Package tui provides the Bubble Tea frontend for Flappy Fish.
// It drives a fishies.Session from timer and key messages, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTickDelay keeps a zero remaining interval from turning into a busy loop.
const minTickDelay = time.Millisecond

// TickMsg is sent when a background tick may be due.
// Timers started before the last mode change carry a stale generation and
// are dropped.
type TickMsg struct {
	gen  int
	Time time.Time
}

// tickCmd returns a command that sends a TickMsg after d.
func tickCmd(gen int, d time.Duration) tea.Cmd {
	if d < minTickDelay {
		d = minTickDelay
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{gen: gen, Time: t}
	})
}
