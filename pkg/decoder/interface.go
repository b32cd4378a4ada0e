// Package decoder defines the Decoder Adapter: the boundary between the scan
// session core and whatever library turns pixels into QR text. It also defines
// the capture ports (Camera, FrameSource) a live session reads frames from.
//
//go:generate mockgen -package mockdecoder -source=interface.go -destination=mock/mockdecoder.go *
package decoder

import (
	"context"
	"image"
	"qrscanner/pkg/domain"
)

// FrameSource is a live stream of frames. Frames is closed by the source when
// the stream ends on its own; Close stops the stream and frees the device.
// Close is idempotent.
type FrameSource interface {
	Frames() <-chan image.Image
	Close() error
}

// Camera acquires frame streams. Open fails with a domain.ErrDeviceUnavailable
// kind when no device is present, granted or free.
type Camera interface {
	Open(ctx context.Context) (FrameSource, error)
}

// Callback receives one outcome per frame attempt, tagged with the generation
// passed to BeginVideoDecode.
type Callback func(outcome domain.Outcome)

// Subscription is the handle of a running video decode. Release stops further
// frame processing and closes the stream; it is idempotent and may be called
// from inside the callback.
type Subscription interface {
	Release()
}

// Decoder wraps a QR decoding capability.
type Decoder interface {
	// BeginVideoDecode starts decoding frames of stream until the returned
	// subscription is released or the stream ends. On success the subscription
	// owns stream; on error the caller keeps ownership.
	BeginVideoDecode(ctx context.Context, stream FrameSource, generation uint64, cb Callback) (Subscription, error)
	// DecodeImageOnce decodes a single static image.
	DecodeImageOnce(ctx context.Context, img image.Image) domain.Outcome
}

// Release releases sub when it is non-nil.
func Release(sub Subscription) {
	if sub != nil {
		sub.Release()
	}
}
