package v1handler

import (
	"net/http"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	"strconv"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// parseHistoryQuery reads the cursor, limit, trusted and channel parameters.
func parseHistoryQuery(r *http.Request) (storage.ScanRecordFilter, time.Time, uint, error) {
	var (
		filter storage.ScanRecordFilter
		cursor time.Time
		limit  uint
	)
	q := r.URL.Query()

	if v := q.Get("cursor"); v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return filter, cursor, limit, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursor = t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filter, cursor, limit, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit")
		}
		limit = uint(n)
	}
	if v := q.Get("trusted"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, cursor, limit, serrors.Wrap(serrors.ErrBadRequest, err, "invalid trusted flag")
		}
		filter.Trusted = &b
	}
	switch ch := domain.Channel(q.Get("channel")); ch {
	case "", domain.ChannelVideo, domain.ChannelImage:
		filter.Channel = ch
	default:
		return filter, cursor, limit, serrors.With(serrors.ErrBadRequest, "unknown channel %q", ch)
	}

	return filter, cursor, limit, nil
}

// listHistory returns a page of scan records. It returns an empty page when
// history is disabled.
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, cursor, limit, err := parseHistoryQuery(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var page storage.ScanRecords
	if h.deps.History != nil {
		page, err = h.deps.History.Recent(ctx, filter, cursor, limit)
		if err != nil {
			writeError(ctx, w, err)

			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("records")
		e.ArrStart()
		for _, rec := range page.Records {
			encodeRecord(e, rec)
		}
		e.ArrEnd()
		if page.NextCursor != nil {
			e.FieldStart("nextCursor")
			e.Str(page.NextCursor.UTC().Format(time.RFC3339Nano))
		}
		e.ObjEnd()
	})
}

func encodeRecord(e *jx.Encoder, rec domain.ScanRecord) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(uuid.UUID(rec.ID).String())
	e.FieldStart("text")
	e.Str(rec.Text)
	e.FieldStart("channel")
	e.Str(string(rec.Channel))
	e.FieldStart("trusted")
	e.Bool(rec.Trusted)
	e.FieldStart("createdAt")
	e.Str(rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}
