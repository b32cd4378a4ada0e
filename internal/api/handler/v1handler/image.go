package v1handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"qrscanner/pkg/serrors"
	"strings"
)

// readBody reads at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) (*bytes.Reader, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrTooLarge, "body exceeds %d bytes", tooLarge.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
	}
	if len(data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "empty body")
	}

	return bytes.NewReader(data), nil
}

// readUpload returns the uploaded image: the "file" part of a multipart form,
// or the raw body otherwise.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (io.Reader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return readBody(w, r, h.opts.MaxUploadBytes)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrTooLarge, "body exceeds %d bytes", tooLarge.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse multipart form")
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "missing file part")
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file part")
	}

	return bytes.NewReader(data), nil
}

// uploadImage runs the one-shot image channel. Decode outcomes, including
// "no code found", are reported as the signal they produced with a 200.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readUpload(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	signal := h.deps.Controller.UploadImage(ctx, body)
	writeJSON(ctx, w, http.StatusOK, signal.Encode)
}
