package domain

import "qrscanner/pkg/serrors"

// Semantic error kinds of the scanning flow. They never escape the session
// controller as panics: each one is turned into a ShowError signal.
var (
	// ErrDeviceUnavailable means no capture device could be acquired.
	ErrDeviceUnavailable = serrors.NewKind("DEVICE_UNAVAILABLE")
	// ErrDecode is a transient, per-attempt decoding failure.
	ErrDecode = serrors.NewKind("DECODE_ERROR")
	// ErrStreamLost means the capture stream ended for good. It is the only
	// fatal decode error.
	ErrStreamLost = serrors.NewKind("STREAM_LOST")
	// ErrInvalidDomain means the decoded text is not a URL on the trusted domain.
	ErrInvalidDomain = serrors.NewKind("INVALID_DOMAIN")
	// ErrNoCodeFound means an uploaded image contained no code.
	ErrNoCodeFound = serrors.NewKind("NO_CODE_FOUND")
	// ErrImageUnreadable means an uploaded file could not be read as an image.
	ErrImageUnreadable = serrors.NewKind("IMAGE_UNREADABLE")
	// ErrClipboardUnavailable means there is nothing to copy or the clipboard
	// rejected the write.
	ErrClipboardUnavailable = serrors.NewKind("CLIPBOARD_UNAVAILABLE")
	// ErrOpenerUnavailable means the URL could not be handed to an opener.
	ErrOpenerUnavailable = serrors.NewKind("OPENER_UNAVAILABLE")
	// ErrNoResult means no validated URL is held yet.
	ErrNoResult = serrors.NewKind("NO_RESULT")
)
