package clipboard

import (
	"context"
	"errors"
	"qrscanner/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	var got string
	s := &System{write: func(text string) error {
		got = text

		return nil
	}}

	require.True(t, s.Available())
	require.NoError(t, s.WriteText(context.Background(), "https://theocourbe.com"))
	require.Equal(t, "https://theocourbe.com", got)
}

func TestWriteTextUnavailable(t *testing.T) {
	s := &System{unsupported: true, write: func(string) error {
		t.Fatal("must not write")

		return nil
	}}

	require.False(t, s.Available())
	require.ErrorIs(t, s.WriteText(context.Background(), "x"), serrors.ErrUnavailable)

	failing := &System{write: func(string) error { return errors.New("exit status 1") }}
	require.ErrorIs(t, failing.WriteText(context.Background(), "x"), serrors.ErrUnavailable)
}
