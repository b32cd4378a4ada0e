// Package history keeps the audit trail of decoded codes: an asynchronous
// recorder batching writes to storage, and paginated reads for the API.
package history

import (
	"context"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultQueueSize bounds records waiting to be written.
	DefaultQueueSize = 256
	// DefaultBatchSize is the maximum number of records per insert.
	DefaultBatchSize = 32
	// DefaultFlushInterval is how long a partial batch may wait.
	DefaultFlushInterval = time.Second
)

// RecorderOptions configure a Recorder.
type RecorderOptions struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	// Now stamps records whose CreatedAt is unset. Defaults to time.Now.
	Now func() time.Time
}

// Recorder queues scan records and writes them in batches. Record never
// blocks the scan session.
type Recorder struct {
	storage storage.ScanRecordStorage
	opts    RecorderOptions
	queue   chan domain.ScanRecord

	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}
}

// NewRecorder creates a Recorder writing to s. Call Run to start writing.
func NewRecorder(s storage.ScanRecordStorage, opts RecorderOptions) *Recorder {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = DefaultFlushInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Recorder{
		storage: s,
		opts:    opts,
		queue:   make(chan domain.ScanRecord, opts.QueueSize),
		closed:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Record enqueues record. It fails with serrors.ErrUnavailable when the queue
// is full or the recorder is closed.
func (r *Recorder) Record(_ context.Context, record domain.ScanRecord) error {
	select {
	case <-r.closed:
		return serrors.With(serrors.ErrUnavailable, "history recorder closed")
	default:
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.opts.Now()
	}

	select {
	case r.queue <- record:
		return nil
	default:
		return serrors.With(serrors.ErrUnavailable, "history queue full")
	}
}

// Run writes queued records until Close is called, then flushes what is left.
// Cancelling ctx aborts pending writes.
func (r *Recorder) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.opts.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.ScanRecord, 0, r.opts.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if _, err := r.storage.StoreScanRecords(ctx, batch...); err != nil {
			logger.Error(ctx, "could not store scan records", zap.Int("count", len(batch)), zap.Error(err))
		} else {
			logger.Debug(ctx, "stored scan records", zap.Int("count", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closed:
			for {
				select {
				case record := <-r.queue:
					batch = append(batch, record)
					if len(batch) == r.opts.BatchSize {
						flush()
					}
				default:
					flush()

					return
				}
			}
		case record := <-r.queue:
			batch = append(batch, record)
			if len(batch) == r.opts.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// Close stops accepting records and waits for Run to flush the queue.
func (r *Recorder) Close(ctx context.Context) {
	r.closeOnce.Do(func() { close(r.closed) })

	select {
	case <-r.done:
	case <-ctx.Done():
	}
}
