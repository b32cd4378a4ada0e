package opener

import (
	"context"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultLoadTimeout bounds a page load in headless mode.
const DefaultLoadTimeout = 15 * time.Second

// ChromeOptions configure a Chrome opener.
type ChromeOptions struct {
	// Headless loads the page without a window and closes the tab afterwards.
	Headless bool
	// ExecPath overrides the Chrome binary lookup.
	ExecPath string
	// LoadTimeout bounds a headless page load.
	LoadTimeout time.Duration
}

// Chrome opens URLs in a Chrome instance it controls. The browser is started
// on first use and shared by every Open.
type Chrome struct {
	opts ChromeOptions

	mu          sync.Mutex
	allocCtx    context.Context //nolint: containedctx
	allocCancel context.CancelFunc
	tabs        []context.CancelFunc
}

// NewChrome creates a Chrome opener. No process is started yet.
func NewChrome(opts ChromeOptions) *Chrome {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultLoadTimeout
	}

	return &Chrome{opts: opts}
}

func (c *Chrome) allocator() context.Context {
	if c.allocCtx != nil {
		return c.allocCtx
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:], //nolint: gocritic
		chromedp.Flag("headless", c.opts.Headless),
		chromedp.Flag("disable-gpu", c.opts.Headless),
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
	)
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}

	c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	return c.allocCtx
}

// Open loads rawURL in a new tab. Navigation through the DevTools protocol
// sends no Referer header.
func (c *Chrome) Open(ctx context.Context, rawURL string) error {
	if err := checkURL(rawURL); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tabCtx, tabCancel := chromedp.NewContext(c.allocator(), chromedp.WithLogf(func(format string, args ...any) {
		logger.Get(ctx).Sugar().Debugf(format, args...)
	}))

	runCtx := tabCtx
	if c.opts.Headless {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(tabCtx, c.opts.LoadTimeout)
		defer cancel()
		defer tabCancel()
	}

	var title string
	if err := chromedp.Run(runCtx, chromedp.Navigate(rawURL), chromedp.Title(&title)); err != nil {
		if !c.opts.Headless {
			tabCancel()
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not open URL in chrome")
	}

	if !c.opts.Headless {
		c.tabs = append(c.tabs, tabCancel)
	}
	logger.Info(ctx, "opened URL in chrome", zap.String("url", rawURL), zap.String("title", title))

	return nil
}

// Close closes every tab and stops the browser.
func (c *Chrome) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cancel := range c.tabs {
		cancel()
	}
	c.tabs = nil

	if c.allocCancel != nil {
		c.allocCancel()
		c.allocCtx, c.allocCancel = nil, nil
	}
}
