package scansession

import (
	"context"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"
	"sync"
)

// Holder is the single slot holding the last validated URL. A new validated
// URL overwrites it; rejected scans never touch it.
type Holder struct {
	mu        sync.RWMutex
	url       string
	opener    Opener
	clipboard Clipboard
}

// NewHolder creates an empty Holder. opener and clipboard may be nil when the
// platform lacks the capability.
func NewHolder(opener Opener, clipboard Clipboard) *Holder {
	return &Holder{opener: opener, clipboard: clipboard}
}

// Store overwrites the held URL.
func (h *Holder) Store(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.url = url
}

// Current returns the held URL, if any.
func (h *Holder) Current() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.url, h.url != ""
}

// Open hands the held URL to the opener. It returns domain.ErrNoResult when
// empty and domain.ErrOpenerUnavailable when the opener is missing or fails.
func (h *Holder) Open(ctx context.Context) error {
	url, ok := h.Current()
	if !ok {
		return serrors.With(domain.ErrNoResult, "no validated URL")
	}
	if h.opener == nil {
		return serrors.With(domain.ErrOpenerUnavailable, "no opener configured")
	}

	if err := h.opener.Open(ctx, url); err != nil {
		return serrors.Wrap(domain.ErrOpenerUnavailable, err, "could not open URL")
	}

	return nil
}

// CopyToClipboard writes the held URL to the clipboard. It fails with
// domain.ErrClipboardUnavailable when empty (without touching the clipboard),
// when no clipboard is configured, or when the write is rejected.
func (h *Holder) CopyToClipboard(ctx context.Context) error {
	url, ok := h.Current()
	if !ok {
		return serrors.With(domain.ErrClipboardUnavailable, "no validated URL to copy")
	}
	if h.clipboard == nil {
		return serrors.With(domain.ErrClipboardUnavailable, "no clipboard configured")
	}

	if err := h.clipboard.WriteText(ctx, url); err != nil {
		return serrors.Wrap(domain.ErrClipboardUnavailable, err, "could not write clipboard")
	}

	return nil
}
