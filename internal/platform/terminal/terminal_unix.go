//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Terminal is a raw-mode TTY whose reads can be switched between blocking
// and non-blocking.
//
// The descriptor itself always stays blocking: stdin usually shares its
// open file description with stdout, so O_NONBLOCK would also make frame
// writes fail with EAGAIN on a slow terminal. Non-blocking reads poll first.
type Terminal struct {
	out      *os.File
	inFd     int
	outFd    int
	oldState *term.State
	blocking bool
}

// Open puts stdin into raw mode. Call Close to restore it.
func Open() (*Terminal, error) {
	t := newTerminal(os.Stdin, os.Stdout)
	if !term.IsTerminal(t.inFd) {
		return nil, ErrNotTerminal
	}

	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return nil, fmt.Errorf("terminal: enable raw mode: %w", err)
	}
	t.oldState = old
	return t, nil
}

func newTerminal(in, out *os.File) *Terminal {
	return &Terminal{
		out:      out,
		inFd:     int(in.Fd()),
		outFd:    int(out.Fd()),
		blocking: true,
	}
}

// Out returns the terminal's output stream.
func (t *Terminal) Out() io.Writer {
	return t.out
}

// ReadChar reads one byte. In non-blocking mode it returns core.NoInput
// when nothing is pending.
func (t *Terminal) ReadChar() (byte, error) {
	if !t.blocking {
		ready, err := t.inputReady()
		if err != nil || !ready {
			return core.NoInput, err
		}
	}

	var buf [1]byte
	for {
		n, err := unix.Read(t.inFd, buf[:])
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return core.NoInput, nil
		case err != nil:
			return 0, fmt.Errorf("terminal: read: %w", err)
		case n == 0:
			return 0, io.EOF
		}
		return buf[0], nil
	}
}

// inputReady polls stdin without waiting.
func (t *Terminal) inputReady() (bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("terminal: poll: %w", err)
		}
		return n > 0, nil
	}
}

// SetBlockingMode switches ReadChar between waiting for a key and
// returning core.NoInput when none is pending.
func (t *Terminal) SetBlockingMode(blocking bool) error {
	t.blocking = blocking
	return nil
}

// QueryTerminalSize returns the window size.
func (t *Terminal) QueryTerminalSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: get size: %w", err)
	}
	return rows, cols, nil
}

// Close restores the terminal mode saved by Open.
// It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	t.blocking = true
	err := term.Restore(t.inFd, t.oldState)
	t.oldState = nil
	if err != nil {
		return fmt.Errorf("terminal: restore: %w", err)
	}
	return nil
}
