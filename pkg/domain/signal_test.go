package domain_test

import (
	"qrscanner/pkg/domain"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func encode(fn func(e *jx.Encoder)) string {
	var e jx.Encoder
	fn(&e)

	return e.String()
}

func TestSignalEncode(t *testing.T) {
	cases := []struct {
		name   string
		signal domain.Signal
		want   string
	}{
		{
			name:   "result",
			signal: domain.ShowResult("https://shop.theocourbe.com/x"),
			want:   `{"kind":"SHOW_RESULT","url":"https://shop.theocourbe.com/x"}`,
		},
		{
			name:   "error",
			signal: domain.ShowError("NO_CODE_FOUND", "no code found"),
			want:   `{"kind":"SHOW_ERROR","message":"no code found","code":"NO_CODE_FOUND"}`,
		},
		{
			name:   "clear",
			signal: domain.Clear(),
			want:   `{"kind":"CLEAR"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.JSONEq(t, tc.want, encode(tc.signal.Encode))
		})
	}
}

func TestNotificationEncodeOmitsEmptyBody(t *testing.T) {
	require.JSONEq(t, `{"title":"Camera stopped"}`,
		encode(domain.Notification{Title: "Camera stopped"}.Encode))
	require.JSONEq(t, `{"title":"QR code detected","body":"https://theocourbe.com"}`,
		encode(domain.Notification{Title: "QR code detected", Body: "https://theocourbe.com"}.Encode))
}

func TestOutcomeConstructors(t *testing.T) {
	found := domain.Found("https://theocourbe.com").WithGeneration(4)
	require.Equal(t, domain.OutcomeFound, found.Kind)
	require.Equal(t, uint64(4), found.Generation)

	require.Equal(t, domain.OutcomeNotFound, domain.NotFound().Kind)
	require.Equal(t, "error", domain.Failed(nil).Kind.String())
}
