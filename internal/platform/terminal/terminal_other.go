//go:build !unix

package terminal

import (
	"errors"
	"io"
)

// ErrUnsupported is returned by Open where raw terminal access is not
// implemented.
var ErrUnsupported = errors.New("terminal: raw mode is not supported on this platform, use --tea")

// Terminal is unavailable on this platform.
type Terminal struct{}

// Open always fails with ErrUnsupported.
func Open() (*Terminal, error) {
	return nil, ErrUnsupported
}

func (t *Terminal) Out() io.Writer                                { return io.Discard }
func (t *Terminal) ReadChar() (byte, error)                       { return 0, ErrUnsupported }
func (t *Terminal) SetBlockingMode(bool) error                    { return ErrUnsupported }
func (t *Terminal) QueryTerminalSize() (rows, cols int, err error) { return 0, 0, ErrUnsupported }
func (t *Terminal) Close() error                                  { return nil }
