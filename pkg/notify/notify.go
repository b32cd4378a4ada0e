// Package notify delivers scan session notifications outside the process.
package notify

import (
	"context"
	"errors"
	"qrscanner/pkg/domain"
)

// Notifier delivers a notification.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Multi fans a notification out to every notifier. All of them are tried; the
// failures are joined.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
