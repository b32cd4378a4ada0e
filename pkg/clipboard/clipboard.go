// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"qrscanner/pkg/serrors"

	"github.com/atotto/clipboard"
)

// System is the platform clipboard. It needs xclip, xsel or wl-clipboard on
// Linux.
type System struct {
	unsupported bool
	write       func(text string) error
}

// NewSystem creates a System clipboard.
func NewSystem() *System {
	return &System{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

// Available reports whether the platform has a usable clipboard.
func (s *System) Available() bool { return !s.unsupported }

// WriteText replaces the clipboard content with text.
func (s *System) WriteText(_ context.Context, text string) error {
	if s.unsupported {
		return serrors.With(serrors.ErrUnavailable, "no clipboard utility available")
	}

	if err := s.write(text); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not write clipboard")
	}

	return nil
}
