package scansession

import (
	"context"
	"io"
	"qrscanner/pkg/domain"
)

// Controller is the scan session state machine. It owns at most one live
// capture session, arbitrates decode outcomes from the video and image
// channels, applies the trusted domain policy and reports everything through
// UI signals.
//
//go:generate mockgen -package mockscansession -source=interface.go -destination=mock/mockscansession.go *
type Controller interface {
	// Start opens the camera and begins a capture session. Failures are shown
	// as an error signal and returned.
	Start(ctx context.Context) error
	// Stop ends the capture session and clears the display. No-op when idle.
	Stop(ctx context.Context)
	// VisibilityLost is called by the host when the page or app goes to the
	// background. It stops a running session.
	VisibilityLost(ctx context.Context)
	// UploadImage decodes a single encoded image and returns the signal it
	// produced. It never alters the capture session.
	UploadImage(ctx context.Context, r io.Reader) domain.Signal
	// Open hands the validated URL to the opener.
	Open(ctx context.Context) error
	// CopyToClipboard writes the validated URL to the clipboard.
	CopyToClipboard(ctx context.Context) error
	// Result returns the last validated URL.
	Result() (string, bool)
	// State reports the session state and its generation.
	State() (State, uint64)
	// Close releases any running session. The controller must not be used
	// afterwards.
	Close(ctx context.Context)
}

// SignalSink receives UI signals. Emit must not block.
type SignalSink interface {
	Emit(ctx context.Context, signal domain.Signal)
}

// Notifier delivers best-effort notifications.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Opener opens a URL in a new context that sends no referrer.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Clipboard writes text to the platform clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Recorder keeps an audit trail of decoded codes. Record must not block.
type Recorder interface {
	Record(ctx context.Context, record domain.ScanRecord) error
}

// SignalSinkFunc adapts a function to SignalSink.
type SignalSinkFunc func(ctx context.Context, signal domain.Signal)

// Emit calls f(ctx, signal).
func (f SignalSinkFunc) Emit(ctx context.Context, signal domain.Signal) { f(ctx, signal) }
