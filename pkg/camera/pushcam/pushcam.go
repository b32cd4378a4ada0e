// Package pushcam implements a decoder.Camera whose frames are pushed by a
// remote client, typically a browser page capturing its camera and posting
// frames to the API. The device is exclusive: one open stream at a time.
package pushcam

import (
	"context"
	"image"
	"qrscanner/pkg/decoder"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"
	"sync"
)

// Options configure a Device.
type Options struct {
	// Buffer is the number of frames kept while the decoder is busy. When the
	// buffer is full the oldest frame is dropped. Values below 1 mean 1.
	Buffer int
}

// Device is a push-fed camera.
type Device struct {
	mu     sync.Mutex
	buffer int
	active *stream
}

var _ decoder.Camera = (*Device)(nil)

// New creates a Device.
func New(opts Options) *Device {
	buffer := opts.Buffer
	if buffer < 1 {
		buffer = 1
	}

	return &Device{buffer: buffer}
}

// Open starts a new stream. It fails with domain.ErrDeviceUnavailable while
// another stream is open.
func (d *Device) Open(_ context.Context) (decoder.FrameSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active != nil {
		return nil, serrors.With(domain.ErrDeviceUnavailable, "camera is busy")
	}

	s := &stream{device: d, frames: make(chan image.Image, d.buffer)}
	d.active = s

	return s, nil
}

// Active reports whether a stream is open.
func (d *Device) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.active != nil && !d.active.ended
}

// Push hands a frame to the open stream without blocking. It fails with
// serrors.ErrConflict when no stream is open.
func (d *Device) Push(_ context.Context, img image.Image) error {
	if img == nil {
		return serrors.With(serrors.ErrBadRequest, "empty frame")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.active
	if s == nil || s.ended {
		return serrors.With(serrors.ErrConflict, "no capture session is running")
	}

	select {
	case s.frames <- img:
		return nil
	default:
	}

	// full: drop the oldest frame, then retry once
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- img:
	default:
	}

	return nil
}

// Hangup ends the open stream as if the client's camera went away. The
// decoder sees the end of the stream and reports it as lost.
func (d *Device) Hangup(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active == nil || d.active.ended {
		return serrors.With(serrors.ErrConflict, "no capture session is running")
	}
	d.active.end()

	return nil
}

type stream struct {
	device *Device
	frames chan image.Image
	ended  bool
}

func (s *stream) Frames() <-chan image.Image { return s.frames }

// end closes the frame channel; callers hold device.mu.
func (s *stream) end() {
	if !s.ended {
		s.ended = true
		close(s.frames)
	}
}

func (s *stream) Close() error {
	s.device.mu.Lock()
	defer s.device.mu.Unlock()

	s.end()
	if s.device.active == s {
		s.device.active = nil
	}

	return nil
}
