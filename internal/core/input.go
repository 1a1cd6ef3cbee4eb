package core

// Raw input bytes shared by every frontend. Keys arrive as single bytes,
// the same way a terminal in non-canonical mode delivers them.
const (
	// NoInput is returned by non-blocking reads when nothing is pending.
	NoInput byte = 0

	KeyInterrupt byte = 0x03 // Ctrl+C
	KeyBackspace byte = 0x08 // Ctrl+H
	KeyNewline   byte = '\n'
	KeyReturn    byte = '\r'
	KeyDelete    byte = 0x7f // what most terminals send for Backspace
)

// IsLineEnd reports whether b terminates a line of command input.
// Raw terminals send '\r' for Enter, cooked ones '\n'.
func IsLineEnd(b byte) bool {
	return b == KeyNewline || b == KeyReturn
}

// IsErase reports whether b deletes the previous character.
func IsErase(b byte) bool {
	return b == KeyDelete || b == KeyBackspace
}

// IsPrintable reports whether b is a printable ASCII character.
func IsPrintable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
