package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"qrscanner/pkg/controller"
	"qrscanner/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:    "forwarded for wins",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8", "X-Real-IP": "9.9.9.9"},
			want:    "1.2.3.4",
		},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 9.8.7.6 "}, want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "unparsable remote addr", remoteAddr: "kiosk", want: "kiosk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.ClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	var seen string
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/session/start", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/session", nil))
	require.NotEmpty(t, seen)
	require.NotEqual(t, "abc-123", seen)
	require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
}

func TestWithLogger_AccessLogLevel(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{status: http.StatusOK, level: zapcore.InfoLevel},
		{status: http.StatusNotFound, level: zapcore.WarnLevel},
		{status: http.StatusServiceUnavailable, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.Get(r.Context()).Debug("inside")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/result", nil)
			req = req.WithContext(logger.WithLogger(context.Background(), zap.New(core)))
			h.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 2)
			require.NotEmpty(t, entries[0].ContextMap()["request_id"])

			access := entries[1]
			require.Equal(t, "access log", access.Message)
			require.Equal(t, tt.level, access.Level)
			fields := access.ContextMap()
			require.Equal(t, int64(tt.status), fields["status_code"])
			require.Equal(t, int64(4), fields["bytes"])
		})
	}
}

func TestWithLogger_Flushes(t *testing.T) {
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, http.NewResponseController(w).Flush())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/signals", nil))
	require.True(t, rec.Flushed)
	require.Equal(t, http.StatusOK, rec.Code)
}
