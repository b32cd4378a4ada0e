package scansession_test

import (
	"context"
	"image"
	"qrscanner/internal/scansession"
	"qrscanner/pkg/camera/pushcam"
	"qrscanner/pkg/decoder/zxing"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/urlpolicy"
	"sync"
	"testing"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(_ context.Context, note domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.titles = append(n.titles, note.Title)

	return nil
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.titles...)
}

// capture wires the controller to the real push camera and gozxing decoder.
type capture struct {
	device   *pushcam.Device
	sink     *recordingSink
	notifier *recordingNotifier
	session  scansession.Controller
}

func newCapture(t *testing.T) *capture {
	t.Helper()

	c := &capture{
		device:   pushcam.New(pushcam.Options{Buffer: 1}),
		sink:     &recordingSink{},
		notifier: &recordingNotifier{},
	}

	session, err := scansession.New(scansession.Options{
		Policy:   urlpolicy.MustNew("theocourbe.com"),
		Decoder:  zxing.New(zxing.Options{}),
		Camera:   c.device,
		Sink:     c.sink,
		Notifier: c.notifier,
	})
	require.NoError(t, err)
	c.session = session
	t.Cleanup(func() { session.Close(context.Background()) })

	return c
}

func (c *capture) start(t *testing.T) {
	t.Helper()

	require.NoError(t, c.session.Start(context.Background()), "last signal: %+v", c.sink.last())
	require.True(t, c.device.Active())
}

func (c *capture) waitIdle(t *testing.T) {
	t.Helper()

	require.Eventually(t, func() bool {
		state, _ := c.session.State()

		return state == scansession.StateIdle
	}, 5*time.Second, 5*time.Millisecond)
}

func qrFrame(t *testing.T, text string) image.Image {
	t.Helper()

	img, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 200, 200, nil)
	require.NoError(t, err)

	return img
}

func TestCaptureRestartsAfterStop(t *testing.T) {
	c := newCapture(t)
	ctx := context.Background()

	for range 50 {
		c.start(t)
		c.session.Stop(ctx)
		require.False(t, c.device.Active())

		c.start(t)
		c.session.VisibilityLost(ctx)
		require.False(t, c.device.Active())
	}

	_, generation := c.session.State()
	require.Equal(t, uint64(100), generation)
}

func TestCaptureRestartsAfterValidatedScan(t *testing.T) {
	c := newCapture(t)

	c.start(t)
	require.NoError(t, c.device.Push(context.Background(), qrFrame(t, trustedURL)))
	c.waitIdle(t)

	require.False(t, c.device.Active())
	require.Equal(t, domain.ShowResult(trustedURL), c.sink.last())
	require.Equal(t, []string{
		scansession.TitleCameraStarted,
		scansession.TitleCodeDetected,
		scansession.TitleCameraStopped,
	}, c.notifier.all())

	c.start(t)
	state, generation := c.session.State()
	require.Equal(t, scansession.StateCapturing, state)
	require.Equal(t, uint64(2), generation)
}

func TestCaptureRestartsAfterStreamLost(t *testing.T) {
	c := newCapture(t)

	c.start(t)
	require.NoError(t, c.device.Hangup(context.Background()))
	c.waitIdle(t)

	require.False(t, c.device.Active())
	require.Equal(t, domain.ErrStreamLost.Error(), c.sink.last().Code)

	c.start(t)
}

func TestCaptureKeepsRunningOnUntrustedCode(t *testing.T) {
	c := newCapture(t)

	c.start(t)
	require.NoError(t, c.device.Push(context.Background(), qrFrame(t, "https://evil.com")))
	require.Eventually(t, func() bool {
		return c.sink.last().Code == domain.ErrInvalidDomain.Error()
	}, 5*time.Second, 5*time.Millisecond)

	state, _ := c.session.State()
	require.Equal(t, scansession.StateCapturing, state)
	require.True(t, c.device.Active())

	c.session.Stop(context.Background())
	require.False(t, c.device.Active())
}
