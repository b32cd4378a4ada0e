// Package opener hands validated URLs to something that can show them: the
// system browser or a Chrome instance driven over the DevTools protocol.
// Either way the page is loaded in a fresh context with no referrer.
package opener

import (
	"context"
	"net/url"
	"qrscanner/pkg/serrors"

	"github.com/pkg/browser"
)

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return serrors.With(serrors.ErrBadRequest, "not an absolute URL: %q", raw)
	}

	return nil
}

// Browser opens URLs in the system default browser.
type Browser struct {
	open func(url string) error
}

// NewBrowser creates a Browser.
func NewBrowser() *Browser {
	return &Browser{open: browser.OpenURL}
}

// Open launches the browser on rawURL.
func (b *Browser) Open(_ context.Context, rawURL string) error {
	if err := checkURL(rawURL); err != nil {
		return err
	}

	if err := b.open(rawURL); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not launch browser")
	}

	return nil
}
