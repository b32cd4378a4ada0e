// Package scansession implements the scan session core: the Idle/Capturing
// state machine, arbitration between the live video channel and one-shot image
// uploads, domain whitelisting and the single-slot result holder.
package scansession

import (
	"context"
	"errors"
	"io"
	"qrscanner/pkg/decoder"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/metrics"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/urlpolicy"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// State is the capture session state.
type State int

const (
	// StateIdle means no capture is running.
	StateIdle State = iota
	// StateCapturing means a video subscription is live.
	StateCapturing
)

func (s State) String() string {
	if s == StateCapturing {
		return "CAPTURING"
	}

	return "IDLE"
}

// Reasons a capture session ends, as reported to logs and metrics.
const (
	endValidated      = "validated"
	endStopped        = "stopped"
	endVisibilityLost = "visibility_lost"
	endStreamLost     = "stream_lost"
	endClosed         = "closed"
)

// Options wire a controller to its collaborators. Policy, Decoder and Sink are
// required; every other port is optional and a nil value means the capability
// is absent.
type Options struct {
	Policy    urlpolicy.Policy
	Decoder   decoder.Decoder
	Camera    decoder.Camera
	Sink      SignalSink
	Notifier  Notifier
	Opener    Opener
	Clipboard Clipboard
	Recorder  Recorder
	Metrics   *metrics.Metrics
}

// controller serializes every event (frame outcome, user action, visibility
// change) behind mu, so the state machine only ever sees one event at a time.
type controller struct {
	mu sync.Mutex

	policy   urlpolicy.Policy
	decoder  decoder.Decoder
	camera   decoder.Camera
	sink     SignalSink
	notifier Notifier
	recorder Recorder
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	holder   *Holder

	state      State
	generation uint64
	sub        decoder.Subscription
	sessionCtx context.Context //nolint: containedctx
	// lastRejected dedupes rejected texts within a session: the same untrusted
	// code stays in view for many frames.
	lastRejected string
}

var _ Controller = (*controller)(nil)

// New creates a Controller.
func New(opts Options) (Controller, error) {
	if opts.Policy.Domain() == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "trusted domain policy is required")
	}
	if opts.Decoder == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "decoder is required")
	}
	if opts.Sink == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "signal sink is required")
	}

	return &controller{
		policy:     opts.Policy,
		decoder:    opts.Decoder,
		camera:     opts.Camera,
		sink:       opts.Sink,
		notifier:   opts.Notifier,
		recorder:   opts.Recorder,
		metrics:    opts.Metrics,
		tracer:     otel.Tracer("qrscanner/scansession"),
		holder:     NewHolder(opts.Opener, opts.Clipboard),
		sessionCtx: context.Background(),
	}, nil
}

// Start opens the camera and subscribes to video decoding. The generation is
// only committed once the subscription exists, so a failed start leaves no
// trace besides the error signal.
func (c *controller) Start(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "scansession.Start")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCapturing {
		logger.Debug(ctx, "capture session already running", zap.Uint64("generation", c.generation))

		return nil
	}

	c.emit(ctx, domain.Clear())

	if c.camera == nil {
		err := serrors.With(domain.ErrDeviceUnavailable, "no camera configured")
		c.startFailed(ctx, span, err)

		return err
	}

	stream, err := c.camera.Open(ctx)
	if err != nil {
		if serrors.KindOf(err) != domain.ErrDeviceUnavailable {
			err = serrors.Wrap(domain.ErrDeviceUnavailable, err, "could not open camera")
		}
		c.startFailed(ctx, span, err)

		return err
	}

	generation := c.generation + 1
	sessionCtx := logger.WithFields(context.WithoutCancel(ctx), zap.Uint64("generation", generation))

	sub, err := c.decoder.BeginVideoDecode(sessionCtx, stream, generation, c.handleOutcome)
	if err != nil {
		if closeErr := stream.Close(); closeErr != nil {
			logger.Warn(ctx, "could not close capture stream", zap.Error(closeErr))
		}
		if serrors.KindOf(err) != domain.ErrDeviceUnavailable {
			err = serrors.Wrap(domain.ErrDeviceUnavailable, err, "could not start video decoding")
		}
		c.startFailed(ctx, span, err)

		return err
	}

	c.generation = generation
	c.sub = sub
	c.state = StateCapturing
	c.sessionCtx = sessionCtx
	c.lastRejected = ""
	c.metrics.SessionStarted()
	span.SetAttributes(attribute.Int64("generation", int64(generation))) //nolint: gosec

	logger.Info(sessionCtx, "capture session started")
	c.notify(sessionCtx, domain.Notification{Title: TitleCameraStarted, Body: BodyCameraStarted})

	return nil
}

func (c *controller) startFailed(ctx context.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "camera unavailable")
	logger.Warn(ctx, "could not start capture session", zap.Error(err))
	c.emit(ctx, domain.ShowError(domain.ErrDeviceUnavailable.Error(), MessageCameraUnavailable))
}

// Stop ends a running session and clears the display.
func (c *controller) Stop(ctx context.Context) {
	c.stopWith(ctx, endStopped)
}

// VisibilityLost stops a running session; it is ignored while idle.
func (c *controller) VisibilityLost(ctx context.Context) {
	c.stopWith(ctx, endVisibilityLost)
}

func (c *controller) stopWith(ctx context.Context, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCapturing {
		return
	}

	c.endSession(ctx, reason)
	c.emit(ctx, domain.Clear())
	c.notify(ctx, domain.Notification{Title: TitleCameraStopped})
}

// endSession releases the subscription and returns to Idle. Every exit from
// Capturing goes through here. Callers hold mu.
func (c *controller) endSession(ctx context.Context, reason string) {
	decoder.Release(c.sub)
	c.sub = nil
	c.state = StateIdle
	c.lastRejected = ""
	c.metrics.SessionEnded(reason)

	logger.Info(ctx, "capture session ended",
		zap.Uint64("generation", c.generation),
		zap.String("reason", reason))
}

// handleOutcome is the video decode callback. It runs on the decoder's
// goroutine and may fire after the session it belongs to has ended; those
// outcomes are recognized by their generation and dropped.
func (c *controller) handleOutcome(out domain.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx := c.sessionCtx
	if c.state != StateCapturing || out.Generation != c.generation {
		logger.Debug(ctx, "discarding stale decode outcome",
			zap.Uint64("outcomeGeneration", out.Generation),
			zap.Uint64("generation", c.generation),
			zap.Stringer("state", c.state))

		return
	}

	c.metrics.IncOutcome(domain.ChannelVideo, out.Kind)

	switch out.Kind {
	case domain.OutcomeNotFound:
		// steady state between scans
	case domain.OutcomeError:
		if errors.Is(out.Err, domain.ErrStreamLost) {
			logger.Warn(ctx, "capture stream lost", zap.Error(out.Err))
			c.endSession(ctx, endStreamLost)
			c.emit(ctx, domain.ShowError(domain.ErrStreamLost.Error(), MessageStreamLost))

			return
		}
		logger.Debug(ctx, "transient decode error", zap.Error(out.Err))
	case domain.OutcomeFound:
		text := strings.TrimSpace(out.Text)
		if !c.policy.Allows(text) {
			c.reject(ctx, domain.ChannelVideo, text)

			return
		}

		c.accept(ctx, domain.ChannelVideo, text)
		c.endSession(ctx, endValidated)
		c.notify(ctx, domain.Notification{Title: TitleCameraStopped})
	}
}

// accept shows and stores a validated URL. Callers hold mu.
func (c *controller) accept(ctx context.Context, channel domain.Channel, url string) domain.Signal {
	c.metrics.IncValidation(channel, true)
	logger.Info(ctx, "validated QR code", zap.String("url", url), zap.String("channel", string(channel)))

	signal := domain.ShowResult(url)
	c.emit(ctx, signal)
	c.holder.Store(url)
	c.record(ctx, channel, url, true)
	c.notify(ctx, domain.Notification{Title: TitleCodeDetected, Body: url})

	return signal
}

// reject shows the invalid domain error. The holder is left untouched. Callers
// hold mu.
func (c *controller) reject(ctx context.Context, channel domain.Channel, text string) domain.Signal {
	c.metrics.IncValidation(channel, false)

	if channel == domain.ChannelImage || text != c.lastRejected {
		logger.Info(ctx, "rejected QR code", zap.String("text", text), zap.String("channel", string(channel)))
		c.record(ctx, channel, text, false)
		if channel == domain.ChannelVideo {
			c.lastRejected = text
		}
	}

	signal := domain.ShowError(domain.ErrInvalidDomain.Error(), invalidDomainMessage(c.policy.Domain()))
	c.emit(ctx, signal)

	return signal
}

// UploadImage runs the image channel: read, decode, validate, report. Reading
// and decoding happen outside the lock so frames keep flowing meanwhile.
func (c *controller) UploadImage(ctx context.Context, r io.Reader) domain.Signal {
	ctx, span := c.tracer.Start(ctx, "scansession.UploadImage")
	defer span.End()

	c.mu.Lock()
	c.emit(ctx, domain.Clear())
	c.mu.Unlock()

	img, format, err := decoder.ReadImage(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unreadable image")
		logger.Warn(ctx, "could not read uploaded image", zap.Error(err))

		return c.showError(ctx, domain.ErrImageUnreadable, MessageImageUnreadable)
	}
	span.SetAttributes(attribute.String("image.format", format))

	out := c.decoder.DecodeImageOnce(ctx, img)
	c.metrics.IncOutcome(domain.ChannelImage, out.Kind)
	span.SetAttributes(attribute.String("outcome", out.Kind.String()))

	c.mu.Lock()
	defer c.mu.Unlock()

	switch out.Kind {
	case domain.OutcomeFound:
		text := strings.TrimSpace(out.Text)
		if !c.policy.Allows(text) {
			return c.reject(ctx, domain.ChannelImage, text)
		}

		return c.accept(ctx, domain.ChannelImage, text)
	case domain.OutcomeNotFound:
		signal := domain.ShowError(domain.ErrNoCodeFound.Error(), MessageNoCodeFound)
		c.emit(ctx, signal)

		return signal
	default:
		span.RecordError(out.Err)
		logger.Warn(ctx, "could not decode uploaded image", zap.Error(out.Err))
		signal := domain.ShowError(domain.ErrImageUnreadable.Error(), MessageImageUnreadable)
		c.emit(ctx, signal)

		return signal
	}
}

// Open hands the validated URL to the opener. An empty holder is reported to
// the caller only; opener failures are also shown.
func (c *controller) Open(ctx context.Context) error {
	err := c.holder.Open(ctx)
	if err == nil || errors.Is(err, domain.ErrNoResult) {
		return err
	}

	logger.Warn(ctx, "could not open validated URL", zap.Error(err))
	c.showError(ctx, domain.ErrOpenerUnavailable, MessageOpenFailed)

	return err
}

// CopyToClipboard copies the validated URL and notifies on success.
func (c *controller) CopyToClipboard(ctx context.Context) error {
	if err := c.holder.CopyToClipboard(ctx); err != nil {
		logger.Warn(ctx, "could not copy validated URL", zap.Error(err))
		c.showError(ctx, domain.ErrClipboardUnavailable, MessageCopyFailed)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify(ctx, domain.Notification{Title: TitleURLCopied})

	return nil
}

func (c *controller) showError(ctx context.Context, kind serrors.Kind, message string) domain.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()

	signal := domain.ShowError(kind.Error(), message)
	c.emit(ctx, signal)

	return signal
}

// Result returns the last validated URL.
func (c *controller) Result() (string, bool) {
	return c.holder.Current()
}

// State reports the session state and the generation of the last session.
func (c *controller) State() (State, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state, c.generation
}

// Close releases a running session without touching the display.
func (c *controller) Close(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCapturing {
		c.endSession(ctx, endClosed)
	}
}

func (c *controller) emit(ctx context.Context, signal domain.Signal) {
	c.sink.Emit(ctx, signal)
}

func (c *controller) notify(ctx context.Context, n domain.Notification) {
	if c.notifier == nil {
		return
	}

	if err := c.notifier.Notify(ctx, n); err != nil {
		logger.Debug(ctx, "could not deliver notification", zap.String("title", n.Title), zap.Error(err))
	}
}

func (c *controller) record(ctx context.Context, channel domain.Channel, text string, trusted bool) {
	if c.recorder == nil {
		return
	}

	if err := c.recorder.Record(ctx, domain.ScanRecord{Text: text, Channel: channel, Trusted: trusted}); err != nil {
		logger.Warn(ctx, "could not record scan", zap.Error(err))
	}
}
