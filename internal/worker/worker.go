// Package worker runs the background jobs of the scan history on river.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job runner.
type Options struct {
	// MaxWorkers bounds concurrent jobs on the default queue.
	MaxWorkers int
	// PruneInterval schedules the periodic prune job. Zero disables it.
	PruneInterval time.Duration
	// Retention and Keep are the arguments of the periodic prune job.
	Retention time.Duration
	Keep      uint
}

// Start registers the workers and starts a river client on dbPool.
func Start(ctx context.Context, dbPool *pgxpool.Pool, strg storage.Storage, opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewPruneWorker(strg))

	var periodic []*river.PeriodicJob
	if opts.PruneInterval > 0 {
		args := PruneScanRecordsArgs{OlderThan: opts.Retention, Keep: opts.Keep}
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(opts.PruneInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return args, &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: opts.PruneInterval}}
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
