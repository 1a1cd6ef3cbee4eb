//go:build unix

package terminal

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fishies"
)

// openPTY returns a raw-mode Terminal reading the pty slave and writing to
// a dup of it, the way a shell hands out fds 0 and 1. outFd is the raw
// output descriptor for flag checks.
func openPTY(t *testing.T) (master *os.File, tm *Terminal, outFd int) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})

	if _, err := term.MakeRaw(int(tty.Fd())); err != nil {
		t.Fatalf("MakeRaw() error = %v", err)
	}

	outFd, err = unix.Dup(int(tty.Fd()))
	if err != nil {
		t.Fatalf("Dup() error = %v", err)
	}
	out := os.NewFile(uintptr(outFd), "tty-out")
	t.Cleanup(func() { out.Close() })

	return ptmx, newTerminal(tty, out), outFd
}

func nonblocking(t *testing.T, fd int) bool {
	t.Helper()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		t.Fatalf("F_GETFL error = %v", err)
	}
	return flags&unix.O_NONBLOCK != 0
}

func TestBackgroundModeKeepsOutputBlocking(t *testing.T) {
	_, tm, outFd := openPTY(t)

	if err := tm.SetBlockingMode(false); err != nil {
		t.Fatalf("SetBlockingMode(false) error = %v", err)
	}
	if nonblocking(t, tm.inFd) {
		t.Error("stdin became O_NONBLOCK in background mode")
	}
	if nonblocking(t, outFd) {
		t.Error("stdout became O_NONBLOCK in background mode")
	}
}

func TestReadCharBackground(t *testing.T) {
	master, tm, _ := openPTY(t)
	if err := tm.SetBlockingMode(false); err != nil {
		t.Fatalf("SetBlockingMode(false) error = %v", err)
	}

	ch, err := tm.ReadChar()
	if err != nil || ch != core.NoInput {
		t.Fatalf("ReadChar() = %q, %v, expected NoInput with nothing typed", ch, err)
	}

	if _, err := master.Write([]byte("w")); err != nil {
		t.Fatalf("write to pty: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for ch == core.NoInput && time.Now().Before(deadline) {
		ch, err = tm.ReadChar()
		if err != nil {
			t.Fatalf("ReadChar() error = %v", err)
		}
		if ch == core.NoInput {
			time.Sleep(time.Millisecond)
		}
	}
	if ch != 'w' {
		t.Errorf("ReadChar() = %q, expected 'w'", ch)
	}
}

func TestReadCharBlocking(t *testing.T) {
	master, tm, _ := openPTY(t)

	if _, err := master.Write([]byte("s")); err != nil {
		t.Fatalf("write to pty: %v", err)
	}
	ch, err := tm.ReadChar()
	if err != nil || ch != 's' {
		t.Errorf("ReadChar() = %q, %v, expected 's'", ch, err)
	}
}

func TestDrawInBackgroundMode(t *testing.T) {
	master, tm, _ := openPTY(t)
	if err := tm.SetBlockingMode(false); err != nil {
		t.Fatalf("SetBlockingMode(false) error = %v", err)
	}

	// A slow reader on the other side: writes must wait, not fail.
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 1024)
		for {
			time.Sleep(time.Millisecond)
			if _, err := master.Read(buf); err != nil {
				return
			}
		}
	}()

	p := NewPainter(tm.Out(), plainPalette())
	frame := fishies.NewFrame()
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			frame.Set(x, y, '*')
		}
	}
	for i := 0; i < 5; i++ {
		if err := p.Draw(frame, core.Cursor{}); err != nil {
			t.Fatalf("draw %d error = %v", i, err)
		}
	}

	master.Close()
	<-done
}
