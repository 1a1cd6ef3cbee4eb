package fishies

import (
	"fmt"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Mode is the input mode of the controller.
type Mode int

const (
	// ModeNormal reads single characters, blocking or not per the background setting.
	ModeNormal Mode = iota
	// ModeCommand reads a whole line, always blocking.
	ModeCommand
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Recognized command lines.
const (
	CommandResume = "resume"
	CommandQuit   = "quit"
)

// Keys maps game actions to input characters.
type Keys struct {
	Up               byte
	Down             byte
	Quit             byte
	Create           byte
	ToggleBackground byte
	Command          byte
}

// DefaultKeys returns the stock bindings.
func DefaultKeys() Keys {
	return Keys{
		Up:               'w',
		Down:             's',
		Quit:             'q',
		Create:           'c',
		ToggleBackground: 'b',
		Command:          'o',
	}
}

// KeysFromConfig converts validated key config into Keys.
// Empty entries keep their default binding.
func KeysFromConfig(kc config.KeyConfig) Keys {
	k := DefaultKeys()
	pick := func(dst *byte, s string) {
		if len(s) == 1 {
			*dst = s[0]
		}
	}
	pick(&k.Up, kc.Up)
	pick(&k.Down, kc.Down)
	pick(&k.Quit, kc.Quit)
	pick(&k.Create, kc.Create)
	pick(&k.ToggleBackground, kc.ToggleBackground)
	pick(&k.Command, kc.Command)
	return k
}

// Action is what a single key asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionCreate
	ActionToggleBackground
	ActionCommand
	ActionQuit
)

// Controller is the input mode state machine. It is the only authority on
// whether input should be read blocking (foreground) or non-blocking
// (background).
type Controller struct {
	keys Keys
	mode Mode

	background      bool
	savedBackground bool // background setting when command mode was entered
	quit            bool

	line []byte // command line being typed
}

// NewController creates a controller in normal mode.
func NewController(keys Keys, background bool) *Controller {
	return &Controller{
		keys:       keys,
		mode:       ModeNormal,
		background: background,
	}
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Background reports whether background processing is on.
func (c *Controller) Background() bool {
	return c.background
}

// Quitting reports whether a quit was requested.
func (c *Controller) Quitting() bool {
	return c.quit
}

// Line returns the command line typed so far.
func (c *Controller) Line() string {
	return string(c.line)
}

// Intercept handles keys that end the session as soon as they are read,
// without waiting for a tick. Reports whether ch was consumed.
func (c *Controller) Intercept(ch byte) bool {
	if ch == core.KeyInterrupt || (c.mode == ModeNormal && ch == c.keys.Quit) {
		c.quit = true
		c.line = c.line[:0]
		return true
	}
	return false
}

// HandleKey applies a single key in normal mode and returns the action it
// maps to. changed reports whether the background setting flipped.
// Keys are ignored in command mode.
func (c *Controller) HandleKey(ch byte) (act Action, changed bool) {
	if c.mode != ModeNormal || ch == core.NoInput {
		return ActionNone, false
	}

	switch ch {
	case core.KeyInterrupt, c.keys.Quit:
		c.quit = true
		return ActionQuit, false
	case c.keys.Up:
		return ActionUp, false
	case c.keys.Down:
		return ActionDown, false
	case c.keys.Create:
		return ActionCreate, false
	case c.keys.ToggleBackground:
		c.background = !c.background
		return ActionToggleBackground, true
	case c.keys.Command:
		c.savedBackground = c.background
		changed = c.background
		c.background = false
		c.mode = ModeCommand
		c.line = c.line[:0]
		return ActionCommand, changed
	}
	return ActionNone, false
}

// Feed adds one character to the command line. done is true when ch ended
// the line, which is then returned and cleared. Erase keys remove the last
// character; other non-printable characters are dropped.
func (c *Controller) Feed(ch byte) (line string, done bool) {
	switch {
	case core.IsLineEnd(ch):
		line = string(c.line)
		c.line = c.line[:0]
		return line, true
	case core.IsErase(ch):
		if n := len(c.line); n > 0 {
			c.line = c.line[:n-1]
		}
	case core.IsPrintable(ch):
		c.line = append(c.line, ch)
	}
	return "", false
}

// HandleCommand runs a completed command line. Unknown commands are
// discarded silently and leave the controller in command mode.
// changed reports whether the background setting flipped.
func (c *Controller) HandleCommand(cmd string) (changed bool) {
	if c.mode != ModeCommand {
		return false
	}

	switch cmd {
	case CommandResume:
		c.mode = ModeNormal
		changed = c.background != c.savedBackground
		c.background = c.savedBackground
	case CommandQuit:
		c.quit = true
	}
	return changed
}
