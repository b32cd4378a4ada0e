// Package zxing implements decoder.Decoder with gozxing, a Go port of the
// ZXing barcode library.
package zxing

import (
	"context"
	"image"
	"qrscanner/pkg/decoder"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/metrics"
	"qrscanner/pkg/serrors"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"go.uber.org/zap"
)

// Options configure the decoder.
type Options struct {
	// TryHarder makes the reader spend more time per frame looking for a code.
	TryHarder bool
	// Metrics receives decode latencies. Optional.
	Metrics *metrics.Metrics
}

// Decoder decodes QR codes from frames and images. It is safe for concurrent
// use: every attempt uses its own reader.
type Decoder struct {
	hints   map[gozxing.DecodeHintType]interface{}
	metrics *metrics.Metrics
}

var _ decoder.Decoder = (*Decoder)(nil)

// New creates a Decoder.
func New(opts Options) *Decoder {
	hints := map[gozxing.DecodeHintType]interface{}{}
	if opts.TryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}

	return &Decoder{
		hints:   hints,
		metrics: opts.Metrics,
	}
}

// DecodeImageOnce decodes a single static image.
func (d *Decoder) DecodeImageOnce(_ context.Context, img image.Image) domain.Outcome {
	return d.decode(domain.ChannelImage, img)
}

// subscription stops its decode loop on Release. Done is closed once the loop
// has exited and the stream is closed.
type subscription struct {
	ctx    context.Context //nolint: containedctx
	cancel context.CancelFunc
	stream decoder.FrameSource
	once   sync.Once
	done   chan struct{}
}

// Release cancels the decode loop and closes the stream before returning, so
// the camera can be opened again right away. The loop's own close is then a
// no-op.
func (s *subscription) Release() {
	s.once.Do(func() {
		s.cancel()
		closeStream(s.ctx, s.stream)
	})
}

func closeStream(ctx context.Context, stream decoder.FrameSource) {
	if err := stream.Close(); err != nil {
		logger.Warn(ctx, "could not close capture stream", zap.Error(err))
	}
}

// Done is closed when the decode loop has stopped and released the stream.
func (s *subscription) Done() <-chan struct{} { return s.done }

// BeginVideoDecode starts a goroutine decoding every frame of stream. The loop
// outlives ctx's cancellation (it is bound to the subscription) but keeps its
// values, such as the logger.
func (d *Decoder) BeginVideoDecode(
	ctx context.Context,
	stream decoder.FrameSource,
	generation uint64,
	cb decoder.Callback) (decoder.Subscription, error) {
	if stream == nil {
		return nil, serrors.With(domain.ErrDeviceUnavailable, "no capture stream")
	}
	if cb == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "no outcome callback")
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &subscription{ctx: loopCtx, cancel: cancel, stream: stream, done: make(chan struct{})}

	go d.run(loopCtx, sub, stream, generation, cb)

	return sub, nil
}

func (d *Decoder) run(
	ctx context.Context,
	sub *subscription,
	stream decoder.FrameSource,
	generation uint64,
	cb decoder.Callback) {
	defer close(sub.done)
	defer closeStream(ctx, stream)

	frames := stream.Frames()
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-frames:
			if !ok {
				if ctx.Err() == nil {
					cb(domain.Failed(serrors.With(domain.ErrStreamLost, "capture stream ended")).WithGeneration(generation))
				}

				return
			}
			if ctx.Err() != nil {
				return
			}

			cb(d.decode(domain.ChannelVideo, frame).WithGeneration(generation))
		}
	}
}

func (d *Decoder) decode(channel domain.Channel, img image.Image) (out domain.Outcome) {
	start := time.Now()
	defer func() {
		// gozxing is fed untrusted pixels; a panic must not take the caller down
		if p := recover(); p != nil {
			out = domain.Failed(serrors.With(domain.ErrDecode, "decoder panicked: %v", p))
		}
		d.metrics.ObserveDecode(channel, time.Since(start))
	}()

	if img == nil || img.Bounds().Empty() {
		return domain.Failed(serrors.With(domain.ErrDecode, "empty frame"))
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return domain.Failed(serrors.Wrap(domain.ErrDecode, errors.Wrap(err, "binarize"), "could not prepare image"))
	}

	res, err := qrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		return classify(err)
	}

	return domain.Found(res.GetText())
}

// classify maps gozxing exceptions onto outcomes: not-found is the steady state
// between scans, checksum and format failures are transient decode errors.
func classify(err error) domain.Outcome {
	var notFound gozxing.NotFoundException
	if errors.As(err, &notFound) {
		return domain.NotFound()
	}

	var checksum gozxing.ChecksumException
	if errors.As(err, &checksum) {
		return domain.Failed(serrors.Wrap(domain.ErrDecode, err, "checksum mismatch"))
	}

	var format gozxing.FormatException
	if errors.As(err, &format) {
		return domain.Failed(serrors.Wrap(domain.ErrDecode, err, "malformed code"))
	}

	return domain.Failed(serrors.Wrap(domain.ErrDecode, err, "decode failed (%T)", err))
}
