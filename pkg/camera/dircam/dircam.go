// Package dircam implements a decoder.Camera that plays back image files from
// a directory, in lexical order, one frame per interval. It backs the CLI
// watch command and is handy for replaying recorded frames.
package dircam

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"qrscanner/pkg/decoder"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is used when Options.Interval is not positive.
const DefaultInterval = 200 * time.Millisecond

// Options configure a Camera.
type Options struct {
	// Dir is the directory holding the frames.
	Dir string
	// Interval is the delay between two frames.
	Interval time.Duration
	// Loop restarts from the first frame instead of ending the stream.
	Loop bool
}

// Camera is a directory-backed camera.
type Camera struct {
	opts Options
}

var _ decoder.Camera = (*Camera)(nil)

// New creates a Camera.
func New(opts Options) *Camera {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	return &Camera{opts: opts}
}

var extensions = map[string]bool{ //nolint: gochecknoglobals
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// Frames lists the frame files of the directory in playback order.
func (c *Camera) Frames() ([]string, error) {
	entries, err := os.ReadDir(c.opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("could not read frame directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(c.opts.Dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// Open starts playback. It fails with domain.ErrDeviceUnavailable when the
// directory cannot be read or holds no frames.
func (c *Camera) Open(ctx context.Context) (decoder.FrameSource, error) {
	files, err := c.Frames()
	if err != nil {
		return nil, serrors.Wrap(domain.ErrDeviceUnavailable, err, "could not open camera %s", c.opts.Dir)
	}
	if len(files) == 0 {
		return nil, serrors.With(domain.ErrDeviceUnavailable, "no frames in %s", c.opts.Dir)
	}

	s := &stream{
		frames: make(chan image.Image),
		stop:   make(chan struct{}),
	}
	go s.play(context.WithoutCancel(ctx), files, c.opts.Interval, c.opts.Loop)

	return s, nil
}

type stream struct {
	frames chan image.Image
	stop   chan struct{}
	once   sync.Once
}

func (s *stream) Frames() <-chan image.Image { return s.frames }

func (s *stream) Close() error {
	s.once.Do(func() { close(s.stop) })

	return nil
}

func (s *stream) play(ctx context.Context, files []string, interval time.Duration, loop bool) {
	defer close(s.frames)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for _, file := range files {
			img, err := readFrame(file)
			if err != nil {
				logger.Warn(ctx, "skipping unreadable frame", zap.String("file", file), zap.Error(err))

				continue
			}

			select {
			case s.frames <- img:
			case <-s.stop:
				return
			}

			select {
			case <-ticker.C:
			case <-s.stop:
				return
			}
		}

		if !loop {
			return
		}
	}
}

func readFrame(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open frame: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := decoder.ReadImage(f)

	return img, err
}
