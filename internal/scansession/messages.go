package scansession

import "fmt"

// User-facing messages carried by error signals.
const (
	MessageCameraUnavailable = "could not access the camera, check permissions"
	MessageStreamLost        = "the camera stream was lost"
	MessageNoCodeFound       = "no code found"
	MessageImageUnreadable   = "could not read the image"
	MessageCopyFailed        = "could not copy the URL"
	MessageOpenFailed        = "could not open the URL"
)

// Notification titles.
const (
	TitleCameraStarted = "Camera started"
	BodyCameraStarted  = "Scan a QR code"
	TitleCameraStopped = "Camera stopped"
	TitleCodeDetected  = "QR code detected"
	TitleURLCopied     = "URL copied"
)

func invalidDomainMessage(domain string) string {
	return fmt.Sprintf("invalid QR code: only %s sites are allowed", domain)
}
