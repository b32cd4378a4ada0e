package notify

import (
	"context"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"sync"

	"go.uber.org/zap"
)

// DefaultQueueSize is the Async queue size used when none is given.
const DefaultQueueSize = 64

// Async decouples a slow notifier from its caller. Notify only enqueues; a
// background goroutine started by Run delivers in order.
type Async struct {
	next  Notifier
	queue chan domain.Notification
	once  sync.Once
	done  chan struct{}
}

// NewAsync wraps next.
func NewAsync(next Notifier, size int) *Async {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Async{
		next:  next,
		queue: make(chan domain.Notification, size),
		done:  make(chan struct{}),
	}
}

// Notify enqueues n. It fails with serrors.ErrUnavailable when the queue is
// full or the notifier is closed.
func (a *Async) Notify(_ context.Context, n domain.Notification) error {
	select {
	case <-a.done:
		return serrors.With(serrors.ErrUnavailable, "notifier closed")
	default:
	}

	select {
	case a.queue <- n:
		return nil
	default:
		return serrors.With(serrors.ErrUnavailable, "notification queue full")
	}
}

// Run delivers queued notifications until ctx is done or Close is called.
func (a *Async) Run(ctx context.Context) {
	for {
		select {
		case <-a.done:
			return
		default:
		}

		select {
		case <-ctx.Done():
			return
		case <-a.done:
			return
		case n := <-a.queue:
			if err := a.next.Notify(ctx, n); err != nil {
				logger.Warn(ctx, "could not deliver notification", zap.String("title", n.Title), zap.Error(err))
			}
		}
	}
}

// Close stops Run. Pending notifications are dropped.
func (a *Async) Close() {
	a.once.Do(func() { close(a.done) })
}
