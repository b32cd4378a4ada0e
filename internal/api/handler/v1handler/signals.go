package v1handler

import (
	"net/http"
	"qrscanner/internal/display"
	"qrscanner/pkg/logger"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

func (h *Handler) getDisplay(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.deps.Display.Current().Encode)
}

// streamSignals serves display events as server-sent events. The current
// signal is sent first.
func (h *Handler) streamSignals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)

	// the stream outlives the server read and write timeouts
	if err := rc.SetReadDeadline(time.Time{}); err != nil {
		logger.Debug(ctx, "could not clear read deadline", zap.Error(err))
	}
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug(ctx, "could not clear write deadline", zap.Error(err))
	}

	events, cancel := h.deps.Display.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		logger.Warn(ctx, "streaming not supported", zap.Error(err))

		return
	}

	heartbeat := time.NewTicker(h.opts.Heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, e); err != nil {
				logger.Debug(ctx, "signal stream closed", zap.Error(err))

				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, e display.Event) error {
	var enc jx.Encoder
	switch {
	case e.Signal != nil:
		e.Signal.Encode(&enc)
	case e.Notification != nil:
		e.Notification.Encode(&enc)
	default:
		return nil
	}

	buf := make([]byte, 0, len(enc.Bytes())+32)
	buf = append(buf, "event: "...)
	buf = append(buf, e.Name()...)
	buf = append(buf, "\ndata: "...)
	buf = append(buf, enc.Bytes()...)
	buf = append(buf, "\n\n"...)
	_, err := w.Write(buf)

	return err
}
