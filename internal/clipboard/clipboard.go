// Package clipboard provides read access to the host clipboard.
//
// The collector only ever reads the clipboard; it never writes to it.
// Reading goes through the Reader interface so tests can substitute a
// scripted clipboard for the real one.
package clipboard

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// Reader returns the current text content of a clipboard.
type Reader interface {
	ReadText() (string, error)
}

// Ensure System implements the Reader interface.
var _ Reader = (*System)(nil)

// System reads the OS clipboard through github.com/atotto/clipboard.
// On Linux this needs xclip, xsel or wl-clipboard on PATH.
type System struct{}

// NewSystem returns a Reader backed by the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the clipboard's current text.
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return text, nil
}

// ReaderFunc adapts a plain function to the Reader interface.
type ReaderFunc func() (string, error)

// ReadText calls f.
func (f ReaderFunc) ReadText() (string, error) {
	return f()
}
