package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"qrscanner/internal/api/handler/v1handler"
	"qrscanner/pkg/serrors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type keyPair struct {
	priv   *rsa.PrivateKey
	pubPEM string
}

func newKeyPair(tb testing.TB) keyPair {
	tb.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return keyPair{priv: priv, pubPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))}
}

func (k keyPair) handler(tb testing.TB) *v1handler.SecHandler {
	tb.Helper()

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: k.pubPEM})
	require.NoError(tb, err)
	require.True(tb, sh.Enabled())

	return sh
}

// token signs claims for subject, valid over [from, to).
func (k keyPair) token(tb testing.TB, subject string, from, to time.Time) string {
	tb.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(from),
		NotBefore: jwt.NewNumericDate(from),
		ExpiresAt: jwt.NewNumericDate(to),
	}).SignedString(k.priv)
	require.NoError(tb, err)

	return signed
}

func TestHandleBearerAuth(t *testing.T) {
	keys, other := newKeyPair(t), newKeyPair(t)
	sh := keys.handler(t)
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "kiosk-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject: "kiosk-1",
	}).SignedString(keys.priv)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		subject string
	}{
		{name: "valid", token: keys.token(t, "kiosk-1", now, now.Add(time.Hour)), subject: "kiosk-1"},
		{name: "foreign key", token: other.token(t, uuid.NewString(), now, now.Add(time.Hour))},
		{name: "expired", token: keys.token(t, "kiosk-1", now.Add(-2*time.Hour), now.Add(-time.Hour))},
		{name: "not yet valid", token: keys.token(t, "kiosk-1", now.Add(time.Hour), now.Add(2*time.Hour))},
		{name: "missing subject", token: keys.token(t, "", now, now.Add(time.Hour))},
		{name: "missing expiry", token: noExpiry},
		{name: "hmac", token: hs256},
		{name: "garbage", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := sh.HandleBearerAuth(context.Background(), tt.token)
			if tt.subject == "" {
				require.ErrorIs(t, err, serrors.ErrUnauthorized)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.subject, ctx.Value(v1handler.SubjectKey))
		})
	}
}

func TestHandleBearerAuth_Disabled(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)
	require.False(t, sh.Enabled())

	ctx, err := sh.HandleBearerAuth(context.Background(), "garbage")
	require.NoError(t, err)
	require.Nil(t, ctx.Value(v1handler.SubjectKey))
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	keys := newKeyPair(t)
	sh := keys.handler(t)

	var subject string
	handler := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = r.Context().Value(v1handler.SubjectKey).(string)
		w.WriteHeader(http.StatusNoContent)
	}))

	now := time.Now()
	tkn := keys.token(t, "kiosk-2", now, now.Add(time.Hour))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{name: "header", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tkn) },
			status: http.StatusNoContent},
		{name: "query", setup: func(r *http.Request) { r.URL.RawQuery = "access_token=" + tkn },
			status: http.StatusNoContent},
		{name: "missing", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "invalid", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject = ""
			req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				require.Equal(t, "kiosk-2", subject)
			}
		})
	}
}

func TestMiddleware_DisabledPassesThrough(t *testing.T) {
	sh, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	called := false
	handler := sh.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/session", nil))
	require.True(t, called)
}
