// Package v1handler implements the /v1 HTTP API of the scanner: session
// control, frame and image input, result actions, the signal stream and the
// scan history.
package v1handler

import (
	"context"
	"errors"
	"image"
	"net/http"
	"qrscanner/internal/display"
	"qrscanner/internal/scansession"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps uploaded images and pushed frames.
const DefaultMaxUploadBytes = 10 << 20

// Display is the presentation state the API streams.
type Display interface {
	Current() domain.Signal
	Subscribe() (<-chan display.Event, func())
}

// FramePusher feeds frames captured by a remote client into the live session.
type FramePusher interface {
	Push(ctx context.Context, img image.Image) error
	Hangup(ctx context.Context) error
}

// HistoryReader lists recorded scans.
type HistoryReader interface {
	Recent(ctx context.Context, filter storage.ScanRecordFilter, cursor time.Time, limit uint) (storage.ScanRecords, error)
}

// Deps are the collaborators of the handlers. Frames and History are optional.
type Deps struct {
	Controller scansession.Controller
	Display    Display
	Frames     FramePusher
	History    HistoryReader
}

// Options tune the handlers.
type Options struct {
	MaxUploadBytes int64
	// Heartbeat is the keep-alive interval of the signal stream.
	Heartbeat time.Duration
}

// Handler serves the v1 API.
type Handler struct {
	deps Deps
	opts Options
}

// New creates a Handler.
func New(deps Deps, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = 15 * time.Second
	}

	return &Handler{deps: deps, opts: opts}
}

// Register mounts the v1 routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.getSession)
		r.Post("/start", h.startSession)
		r.Post("/stop", h.stopSession)
		r.Post("/visibility-lost", h.visibilityLost)
		r.Post("/frames", h.pushFrame)
		r.Post("/frames/end", h.endFrames)
	})
	r.Post("/images", h.uploadImage)
	r.Route("/result", func(r chi.Router) {
		r.Get("/", h.getResult)
		r.Post("/open", h.openResult)
		r.Post("/copy", h.copyResult)
	})
	r.Get("/display", h.getDisplay)
	r.Get("/signals", h.streamSignals)
	r.Get("/history", h.listHistory)
}

// statusOf maps an error kind to an HTTP status.
func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrNotFound, domain.ErrNoResult:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTooLarge:
		return http.StatusRequestEntityTooLarge
	case domain.ErrImageUnreadable:
		return http.StatusUnprocessableEntity
	case serrors.ErrUnavailable,
		domain.ErrDeviceUnavailable,
		domain.ErrClipboardUnavailable,
		domain.ErrOpenerUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var defaultMessages = map[int]string{ //nolint: gochecknoglobals
	http.StatusBadRequest:            "bad request",
	http.StatusUnauthorized:          "unauthorized",
	http.StatusNotFound:              "resource not found",
	http.StatusConflict:              "conflict",
	http.StatusRequestEntityTooLarge: "payload too large",
	http.StatusUnprocessableEntity:   "image unreadable",
	http.StatusServiceUnavailable:    "service unavailable",
}

// writeError writes {"error":{"code","message"}}. Internal errors are logged
// and their details hidden.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	status := statusOf(kind)

	code := serrors.ErrInternal.Error()
	message := "internal error"
	if status != http.StatusInternalServerError {
		code = kind.Error()
		message = serrors.MessageOf(err, defaultMessages[status])
		logger.Debug(ctx, "request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.ObjStart()
	e.FieldStart("code")
	e.Str(code)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	e.ObjEnd()

	writeRaw(ctx, w, status, e.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)
	writeRaw(ctx, w, status, e.Bytes())
}

func writeRaw(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
