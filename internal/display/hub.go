// Package display is the presentation side of the scan session: it keeps the
// signal currently on screen and fans signals and notifications out to live
// subscribers (SSE clients, terminal printers).
package display

import (
	"context"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// DefaultBuffer is the per-subscriber queue size.
const DefaultBuffer = 16

// Event is what subscribers receive: exactly one of Signal or Notification is
// set.
type Event struct {
	Signal       *domain.Signal
	Notification *domain.Notification
}

// Name returns the SSE event name of e.
func (e Event) Name() string {
	if e.Notification != nil {
		return "notification"
	}

	return "signal"
}

// Options configure a Hub.
type Options struct {
	// Buffer is the per-subscriber queue size.
	Buffer int
	// MeterProvider records delivered and dropped events. Nil disables metrics.
	MeterProvider metric.MeterProvider
}

// Hub implements the signal sink and the notifier of a scan session.
// Publishing never blocks: a subscriber whose queue is full misses the event.
type Hub struct {
	mu          sync.Mutex
	current     domain.Signal
	subscribers map[uint64]chan Event
	nextID      uint64
	buffer      int

	delivered metric.Int64Counter
	dropped   metric.Int64Counter
}

// New creates a Hub showing nothing.
func New(opts Options) (*Hub, error) {
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultBuffer
	}
	mp := opts.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	meter := mp.Meter("qrscanner/display")
	delivered, err := meter.Int64Counter("display_events_delivered",
		metric.WithDescription("Display events queued to subscribers"))
	if err != nil {
		return nil, err
	}
	dropped, err := meter.Int64Counter("display_events_dropped",
		metric.WithDescription("Display events dropped because a subscriber was slow"))
	if err != nil {
		return nil, err
	}

	return &Hub{
		current:     domain.Clear(),
		subscribers: make(map[uint64]chan Event),
		buffer:      opts.Buffer,
		delivered:   delivered,
		dropped:     dropped,
	}, nil
}

// Emit replaces the current signal and broadcasts it. A signal identical to the
// current one is not broadcast again, so an invalid code held in front of the
// camera does not flood subscribers.
func (h *Hub) Emit(ctx context.Context, signal domain.Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if signal == h.current {
		return
	}
	h.current = signal

	logger.Debug(ctx, "display signal", zap.String("kind", string(signal.Kind)))
	h.broadcast(ctx, Event{Signal: &signal})
}

// Notify broadcasts a transient notification. It never fails.
func (h *Hub) Notify(ctx context.Context, n domain.Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcast(ctx, Event{Notification: &n})

	return nil
}

// Current returns the signal on screen.
func (h *Hub) Current() domain.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current
}

// Subscribe registers a subscriber. The current signal is queued first. The
// returned cancel func unregisters it and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Event, h.buffer)
	current := h.current
	ch <- Event{Signal: &current}
	h.subscribers[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subscribers, id)
			close(ch)
		})
	}
}

// Subscribers returns the number of live subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers)
}

// broadcast must be called with mu held.
func (h *Hub) broadcast(ctx context.Context, e Event) {
	attrs := metric.WithAttributes(attribute.String("event", e.Name()))
	for _, ch := range h.subscribers {
		select {
		case ch <- e:
			h.delivered.Add(ctx, 1, attrs)
		default:
			h.dropped.Add(ctx, 1, attrs)
		}
	}
}
