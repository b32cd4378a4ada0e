package v1handler

import (
	"net/http"
	"qrscanner/pkg/decoder"
	"qrscanner/pkg/serrors"

	"github.com/go-faster/jx"
)

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, status int) {
	state, generation := h.deps.Controller.State()
	writeJSON(r.Context(), w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("state")
		e.Str(state.String())
		e.FieldStart("generation")
		e.UInt64(generation)
		e.ObjEnd()
	})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Controller.Start(r.Context()); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) stopSession(w http.ResponseWriter, r *http.Request) {
	h.deps.Controller.Stop(r.Context())
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) visibilityLost(w http.ResponseWriter, r *http.Request) {
	h.deps.Controller.VisibilityLost(r.Context())
	h.writeSession(w, r, http.StatusOK)
}

// pushFrame accepts one encoded frame for the live session.
func (h *Handler) pushFrame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.deps.Frames == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "frame push is not enabled"))

		return
	}

	body, err := readBody(w, r, h.opts.MaxUploadBytes)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	img, _, err := decoder.ReadImage(body)
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "frame is not a supported image"))

		return
	}

	if err := h.deps.Frames.Push(ctx, img); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// endFrames tells the session the remote camera stopped for good.
func (h *Handler) endFrames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.deps.Frames == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "frame push is not enabled"))

		return
	}

	if err := h.deps.Frames.Hangup(ctx); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
