package zxing_test

import (
	"context"
	"image"
	"image/color"
	"qrscanner/pkg/decoder/zxing"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"sync"
	"testing"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func qrImage(t *testing.T, text string) image.Image {
	t.Helper()

	img, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 200, 200, nil)
	require.NoError(t, err)

	return img
}

func blankImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	return img
}

// chanSource is a FrameSource fed by the test.
type chanSource struct {
	frames chan image.Image
	mu     sync.Mutex
	closed int
}

func newChanSource() *chanSource { return &chanSource{frames: make(chan image.Image, 4)} }

func (s *chanSource) Frames() <-chan image.Image { return s.frames }

func (s *chanSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++

	return nil
}

func (s *chanSource) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

type doner interface{ Done() <-chan struct{} }

func waitDone(t *testing.T, sub any) {
	t.Helper()

	d, ok := sub.(doner)
	require.True(t, ok, "subscription exposes Done")
	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("decode loop did not stop")
	}
}

func TestDecodeImageOnce_Found(t *testing.T) {
	d := zxing.New(zxing.Options{TryHarder: true})

	out := d.DecodeImageOnce(context.Background(), qrImage(t, "https://shop.theocourbe.com/x"))
	require.Equal(t, domain.OutcomeFound, out.Kind)
	require.Equal(t, "https://shop.theocourbe.com/x", out.Text)
}

func TestDecodeImageOnce_NotFound(t *testing.T) {
	d := zxing.New(zxing.Options{})

	out := d.DecodeImageOnce(context.Background(), blankImage())
	require.Equal(t, domain.OutcomeNotFound, out.Kind)
}

func TestDecodeImageOnce_EmptyImageIsDecodeError(t *testing.T) {
	d := zxing.New(zxing.Options{})

	out := d.DecodeImageOnce(context.Background(), image.NewGray(image.Rect(0, 0, 0, 0)))
	require.Equal(t, domain.OutcomeError, out.Kind)
	require.ErrorIs(t, out.Err, domain.ErrDecode)

	out = d.DecodeImageOnce(context.Background(), nil)
	require.Equal(t, domain.OutcomeError, out.Kind)
}

func TestBeginVideoDecode_RejectsMissingStream(t *testing.T) {
	d := zxing.New(zxing.Options{})

	_, err := d.BeginVideoDecode(context.Background(), nil, 1, func(domain.Outcome) {})
	require.ErrorIs(t, err, domain.ErrDeviceUnavailable)
}

func TestBeginVideoDecode_TagsOutcomesWithGeneration(t *testing.T) {
	d := zxing.New(zxing.Options{})
	src := newChanSource()
	outcomes := make(chan domain.Outcome, 4)

	sub, err := d.BeginVideoDecode(context.Background(), src, 7, func(o domain.Outcome) { outcomes <- o })
	require.NoError(t, err)

	src.frames <- blankImage()
	src.frames <- qrImage(t, "https://theocourbe.com")

	first := <-outcomes
	require.Equal(t, domain.OutcomeNotFound, first.Kind)
	require.Equal(t, uint64(7), first.Generation)

	second := <-outcomes
	require.Equal(t, domain.OutcomeFound, second.Kind)
	require.Equal(t, "https://theocourbe.com", second.Text)
	require.Equal(t, uint64(7), second.Generation)

	sub.Release()
	// the stream is closed by the time Release returns
	require.GreaterOrEqual(t, src.closeCount(), 1)
	sub.Release() // idempotent
	waitDone(t, sub)
}

func TestBeginVideoDecode_ReleaseFromCallback(t *testing.T) {
	d := zxing.New(zxing.Options{})
	src := newChanSource()

	var (
		mu   sync.Mutex
		sub  interface{ Release() }
		seen int
	)
	ready := make(chan struct{})
	s, err := d.BeginVideoDecode(context.Background(), src, 1, func(domain.Outcome) {
		<-ready
		mu.Lock()
		defer mu.Unlock()
		seen++
		sub.Release()
	})
	require.NoError(t, err)
	mu.Lock()
	sub = s
	mu.Unlock()
	close(ready)

	src.frames <- blankImage()
	waitDone(t, s)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, seen)
	require.GreaterOrEqual(t, src.closeCount(), 1)
}

func TestBeginVideoDecode_StreamEndIsStreamLost(t *testing.T) {
	d := zxing.New(zxing.Options{})
	src := newChanSource()
	outcomes := make(chan domain.Outcome, 1)

	sub, err := d.BeginVideoDecode(context.Background(), src, 3, func(o domain.Outcome) { outcomes <- o })
	require.NoError(t, err)

	close(src.frames)

	out := <-outcomes
	require.Equal(t, domain.OutcomeError, out.Kind)
	require.ErrorIs(t, out.Err, domain.ErrStreamLost)
	require.Equal(t, uint64(3), out.Generation)
	waitDone(t, sub)
}

func TestBeginVideoDecode_SurvivesCallerContextCancel(t *testing.T) {
	d := zxing.New(zxing.Options{})
	src := newChanSource()
	outcomes := make(chan domain.Outcome, 1)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := d.BeginVideoDecode(ctx, src, 1, func(o domain.Outcome) { outcomes <- o })
	require.NoError(t, err)
	cancel()

	src.frames <- blankImage()
	require.Equal(t, domain.OutcomeNotFound, (<-outcomes).Kind)

	sub.Release()
	waitDone(t, sub)
}
