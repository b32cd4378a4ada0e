package worker

import (
	"context"
	"errors"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PruneScanRecordsArgs asks for old scan records to be deleted.
type PruneScanRecordsArgs struct {
	// OlderThan deletes records older than this age. Zero keeps every age.
	OlderThan time.Duration `json:"older_than"`
	// Keep trims the history to the newest Keep records. Zero keeps all.
	Keep uint `json:"keep"`
}

// Kind implements river.JobArgs.
func (PruneScanRecordsArgs) Kind() string { return "prune_scan_records" }

// PruneWorker deletes expired scan records. Both steps share one transaction.
type PruneWorker struct {
	river.WorkerDefaults[PruneScanRecordsArgs]

	storage storage.Storage
	now     func() time.Time
}

// NewPruneWorker creates a PruneWorker.
func NewPruneWorker(strg storage.Storage) *PruneWorker {
	return &PruneWorker{storage: strg, now: time.Now}
}

// Work implements river.Worker.
func (w *PruneWorker) Work(ctx context.Context, job *river.Job[PruneScanRecordsArgs]) error {
	args := job.Args
	if args.OlderThan <= 0 && args.Keep == 0 {
		return river.JobCancel(errors.New("prune job without retention nor keep limit")) //nolint: wrapcheck
	}

	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	var expired, trimmed int64
	err := w.storage.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		if args.OlderThan > 0 {
			if expired, err = s.DeleteScanRecordsBefore(ctx, w.now().Add(-args.OlderThan)); err != nil {
				return err //nolint: wrapcheck
			}
		}
		if args.Keep > 0 {
			if trimmed, err = s.TrimScanRecords(ctx, args.Keep); err != nil {
				return err //nolint: wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		logger.Warn(ctx, "could not prune scan records", zap.Error(err))

		return err //nolint: wrapcheck
	}

	logger.Info(ctx, "pruned scan records", zap.Int64("expired", expired), zap.Int64("trimmed", trimmed))

	return nil
}
