package v1handler

import (
	"net/http"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"

	"github.com/go-faster/jx"
)

func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	url, ok := h.deps.Controller.Result()
	if !ok {
		writeError(r.Context(), w, serrors.With(domain.ErrNoResult, "no validated URL yet"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("url")
		e.Str(url)
		e.ObjEnd()
	})
}

func (h *Handler) openResult(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Controller.Open(r.Context()); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) copyResult(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Controller.CopyToClipboard(r.Context()); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
