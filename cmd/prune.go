package main

import (
	"context"
	"fmt"
	"qrscanner/internal/config"
	"qrscanner/internal/worker"
	"qrscanner/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pruneCommand enqueues a one-off prune of the scan history. The job runs on
// the workers of a serve process.
func pruneCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Enqueues a scan history prune job",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			olderThan, _ := cmd.Flags().GetDuration("older-than")
			keep, _ := cmd.Flags().GetUint("keep")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			inserted, err := strg.AddJob(ctx, worker.PruneScanRecordsArgs{OlderThan: olderThan, Keep: keep},
				&river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}})
			if err != nil {
				logger.Fatal(ctx, "could not enqueue prune job", zap.Error(err))
			}

			if inserted {
				fmt.Println("prune job enqueued") //nolint: forbidigo
			} else {
				fmt.Println("an identical prune job is already pending") //nolint: forbidigo
			}
		},
	}

	cmd.Flags().Duration("older-than", cfg.History.Retention, "Delete records older than this age (0 disables)")
	cmd.Flags().Uint("keep", cfg.History.Keep, "Keep at most this many records (0 disables)")

	return cmd
}
