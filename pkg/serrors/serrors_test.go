package serrors_test

import (
	"errors"
	"fmt"
	"qrscanner/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e *customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrTooLarge,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("camera busy")

	e1 := serrors.With(serrors.ErrConflict, "session %d already running", 3)
	require.Equal(t, "session 3 already running", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "opening camera")
	require.Equal(t, "opening camera: camera busy", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.ErrConflict))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrTooLarge, "too big"))
	require.Equal(t, serrors.ErrTooLarge, serrors.KindOf(wrapped))

	// the outermost semantic kind wins
	nested := serrors.Wrap(serrors.ErrUnavailable, serrors.KindOnly(serrors.ErrNotFound), "outer")
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(nested))
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "fallback", serrors.MessageOf(errors.New("plain"), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound), "fallback"))

	err := fmt.Errorf("ctx: %w", serrors.With(serrors.ErrBadRequest, "missing file"))
	require.Equal(t, "missing file", serrors.MessageOf(err, "fallback"))
}
