package v1handler_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"qrscanner/internal/api/handler/v1handler"
	"qrscanner/internal/display"
	"qrscanner/internal/scansession"
	mockscansession "qrscanner/internal/scansession/mock"
	"qrscanner/pkg/camera/pushcam"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type fixture struct {
	controller *mockscansession.MockController
	hub        *display.Hub
	frames     *pushcam.Device
	server     *httptest.Server
}

func newFixture(t *testing.T, history v1handler.HistoryReader) *fixture {
	t.Helper()

	hub, err := display.New(display.Options{})
	require.NoError(t, err)

	f := &fixture{
		controller: mockscansession.NewMockController(gomock.NewController(t)),
		hub:        hub,
		frames:     pushcam.New(pushcam.Options{Buffer: 1}),
	}

	deps := v1handler.Deps{
		Controller: f.controller,
		Display:    f.hub,
		Frames:     f.frames,
	}
	if history != nil {
		deps.History = history
	}

	r := chi.NewRouter()
	r.Route("/v1", v1handler.New(deps, v1handler.Options{MaxUploadBytes: 1 << 16, Heartbeat: time.Hour}).Register)
	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fixture) do(t *testing.T, method, path, contentType string, body io.Reader) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, f.server.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, data
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))

	return buf.Bytes()
}

func errorCode(t *testing.T, body []byte) (string, string) {
	t.Helper()

	var code, message string
	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		if key != "error" {
			return d.Skip()
		}

		return d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "code":
				code, err = d.Str()
			case "message":
				message, err = d.Str()
			default:
				err = d.Skip()
			}

			return err
		})
	})
	require.NoError(t, err, string(body))

	return code, message
}

func TestSession_Lifecycle(t *testing.T) {
	f := newFixture(t, nil)

	f.controller.EXPECT().Start(gomock.Any()).Return(nil)
	f.controller.EXPECT().State().Return(scansession.StateCapturing, uint64(1))
	res, body := f.do(t, http.MethodPost, "/v1/session/start", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"state":"CAPTURING","generation":1}`, string(body))

	f.controller.EXPECT().VisibilityLost(gomock.Any())
	f.controller.EXPECT().State().Return(scansession.StateIdle, uint64(1))
	res, body = f.do(t, http.MethodPost, "/v1/session/visibility-lost", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"state":"IDLE","generation":1}`, string(body))

	f.controller.EXPECT().Stop(gomock.Any())
	f.controller.EXPECT().State().Return(scansession.StateIdle, uint64(1))
	res, _ = f.do(t, http.MethodPost, "/v1/session/stop", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSession_StartDeviceUnavailable(t *testing.T) {
	f := newFixture(t, nil)

	f.controller.EXPECT().Start(gomock.Any()).
		Return(serrors.With(domain.ErrDeviceUnavailable, "camera is busy"))
	res, body := f.do(t, http.MethodPost, "/v1/session/start", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	code, message := errorCode(t, body)
	require.Equal(t, "DEVICE_UNAVAILABLE", code)
	require.Equal(t, "camera is busy", message)
}

func TestFrames(t *testing.T) {
	f := newFixture(t, nil)

	// no stream open yet
	res, body := f.do(t, http.MethodPost, "/v1/session/frames", "image/png", bytes.NewReader(pngBytes(t)))
	require.Equal(t, http.StatusConflict, res.StatusCode)
	code, _ := errorCode(t, body)
	require.Equal(t, "CONFLICT", code)

	src, err := f.frames.Open(context.Background())
	require.NoError(t, err)

	res, _ = f.do(t, http.MethodPost, "/v1/session/frames", "image/png", bytes.NewReader(pngBytes(t)))
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	require.Len(t, src.Frames(), 1)

	res, body = f.do(t, http.MethodPost, "/v1/session/frames", "image/png", strings.NewReader("not an image"))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	code, _ = errorCode(t, body)
	require.Equal(t, "BAD_REQUEST", code)

	res, _ = f.do(t, http.MethodPost, "/v1/session/frames/end", "", nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.False(t, f.frames.Active())
}

func TestFrames_TooLarge(t *testing.T) {
	f := newFixture(t, nil)

	res, body := f.do(t, http.MethodPost, "/v1/session/frames", "image/png", bytes.NewReader(make([]byte, 1<<17)))
	require.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
	code, _ := errorCode(t, body)
	require.Equal(t, "TOO_LARGE", code)
}

func TestUploadImage_RawBody(t *testing.T) {
	f := newFixture(t, nil)
	data := pngBytes(t)

	f.controller.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r io.Reader) domain.Signal {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, data, got)

			return domain.ShowResult("https://theocourbe.com/a")
		})

	res, body := f.do(t, http.MethodPost, "/v1/images", "image/png", bytes.NewReader(data))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"kind":"SHOW_RESULT","url":"https://theocourbe.com/a"}`, string(body))
}

func TestUploadImage_Multipart(t *testing.T) {
	f := newFixture(t, nil)
	data := pngBytes(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "code.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	f.controller.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r io.Reader) domain.Signal {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, data, got)

			return domain.ShowError(domain.ErrNoCodeFound.Error(), "no code found")
		})

	res, body := f.do(t, http.MethodPost, "/v1/images", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"kind":"SHOW_ERROR","message":"no code found","code":"NO_CODE_FOUND"}`, string(body))
}

func TestUploadImage_MissingFilePart(t *testing.T) {
	f := newFixture(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	res, body := f.do(t, http.MethodPost, "/v1/images", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	_, message := errorCode(t, body)
	require.Equal(t, "missing file part", message)
}

func TestUploadImage_EmptyBody(t *testing.T) {
	f := newFixture(t, nil)

	res, _ := f.do(t, http.MethodPost, "/v1/images", "image/png", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResult(t *testing.T) {
	f := newFixture(t, nil)

	f.controller.EXPECT().Result().Return("", false)
	res, body := f.do(t, http.MethodGet, "/v1/result", "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	code, _ := errorCode(t, body)
	require.Equal(t, "NO_RESULT", code)

	f.controller.EXPECT().Result().Return("https://theocourbe.com", true)
	res, body = f.do(t, http.MethodGet, "/v1/result", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"url":"https://theocourbe.com"}`, string(body))
}

func TestResultActions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
		code   string
	}{
		{name: "open ok", path: "/v1/result/open", status: http.StatusNoContent},
		{name: "open without result", path: "/v1/result/open",
			err: serrors.KindOnly(domain.ErrNoResult), status: http.StatusNotFound, code: "NO_RESULT"},
		{name: "open failure", path: "/v1/result/open",
			err: serrors.With(domain.ErrOpenerUnavailable, "could not open"), status: http.StatusServiceUnavailable,
			code: "OPENER_UNAVAILABLE"},
		{name: "copy ok", path: "/v1/result/copy", status: http.StatusNoContent},
		{name: "copy failure", path: "/v1/result/copy",
			err: serrors.With(domain.ErrClipboardUnavailable, "copy failed"), status: http.StatusServiceUnavailable,
			code: "CLIPBOARD_UNAVAILABLE"},
		{name: "unexpected", path: "/v1/result/copy",
			err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if strings.HasSuffix(tt.path, "/open") {
				f.controller.EXPECT().Open(gomock.Any()).Return(tt.err)
			} else {
				f.controller.EXPECT().CopyToClipboard(gomock.Any()).Return(tt.err)
			}

			res, body := f.do(t, http.MethodPost, tt.path, "", nil)
			require.Equal(t, tt.status, res.StatusCode)
			if tt.code != "" {
				code, _ := errorCode(t, body)
				require.Equal(t, tt.code, code)
			}
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	f := newFixture(t, nil)

	f.controller.EXPECT().Open(gomock.Any()).Return(serrors.With(serrors.ErrInternal, "db password is hunter2"))
	res, body := f.do(t, http.MethodPost, "/v1/result/open", "", nil)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	code, message := errorCode(t, body)
	require.Equal(t, "INTERNAL", code)
	require.Equal(t, "internal error", message)
}

func TestDisplay(t *testing.T) {
	f := newFixture(t, nil)

	f.hub.Emit(context.Background(), domain.ShowResult("https://theocourbe.com"))
	res, body := f.do(t, http.MethodGet, "/v1/display", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"kind":"SHOW_RESULT","url":"https://theocourbe.com"}`, string(body))
}

func TestSignalsStream(t *testing.T) {
	f := newFixture(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.server.URL+"/v1/signals", nil)
	require.NoError(t, err)
	res, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	lines := bufio.NewScanner(res.Body)
	next := func() (string, string) {
		var event, data string
		for lines.Scan() {
			line := lines.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "" && event != "":
				return event, data
			}
		}

		return event, data
	}

	event, data := next()
	require.Equal(t, "signal", event)
	require.JSONEq(t, `{"kind":"CLEAR"}`, data)

	require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	f.hub.Emit(context.Background(), domain.ShowError("INVALID_DOMAIN", "untrusted"))
	event, data = next()
	require.Equal(t, "signal", event)
	require.JSONEq(t, `{"kind":"SHOW_ERROR","message":"untrusted","code":"INVALID_DOMAIN"}`, data)

	require.NoError(t, f.hub.Notify(context.Background(), domain.Notification{Title: "URL copied"}))
	event, data = next()
	require.Equal(t, "notification", event)
	require.JSONEq(t, `{"title":"URL copied"}`, data)

	cancel()
	require.Eventually(t, func() bool { return f.hub.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

type historyStub struct {
	filter storage.ScanRecordFilter
	cursor time.Time
	limit  uint
	page   storage.ScanRecords
	err    error
}

func (s *historyStub) Recent(_ context.Context,
	filter storage.ScanRecordFilter,
	cursor time.Time,
	limit uint) (storage.ScanRecords, error) {
	s.filter, s.cursor, s.limit = filter, cursor, limit

	return s.page, s.err
}

func TestHistory(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7d0c3c6e-8f55-4b8e-9c3b-0ea4f1d2a111")
	stub := &historyStub{page: storage.ScanRecords{
		Records: []domain.ScanRecord{{
			ID:        domain.ScanRecordID(id),
			Text:      "https://evil.com",
			Channel:   domain.ChannelImage,
			Trusted:   false,
			CreatedAt: created,
		}},
		NextCursor: &created,
	}}
	f := newFixture(t, stub)

	res, body := f.do(t, http.MethodGet,
		"/v1/history?limit=5&trusted=false&channel=image&cursor=2026-03-02T00:00:00Z", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{
		"records": [{
			"id": "7d0c3c6e-8f55-4b8e-9c3b-0ea4f1d2a111",
			"text": "https://evil.com",
			"channel": "image",
			"trusted": false,
			"createdAt": "2026-03-01T12:00:00Z"
		}],
		"nextCursor": "2026-03-01T12:00:00Z"
	}`, string(body))

	require.Equal(t, uint(5), stub.limit)
	require.NotNil(t, stub.filter.Trusted)
	require.False(t, *stub.filter.Trusted)
	require.Equal(t, domain.ChannelImage, stub.filter.Channel)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), stub.cursor)
}

func TestHistory_BadQuery(t *testing.T) {
	f := newFixture(t, &historyStub{})

	for _, q := range []string{"limit=-1", "trusted=maybe", "channel=radio", "cursor=yesterday"} {
		res, body := f.do(t, http.MethodGet, "/v1/history?"+q, "", nil)
		require.Equal(t, http.StatusBadRequest, res.StatusCode, q)
		code, _ := errorCode(t, body)
		require.Equal(t, "BAD_REQUEST", code, q)
	}
}

func TestHistory_Disabled(t *testing.T) {
	f := newFixture(t, nil)

	res, body := f.do(t, http.MethodGet, "/v1/history", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"records":[]}`, string(body))
}
