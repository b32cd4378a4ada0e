package main

import (
	"context"
	"errors"
	"os/signal"
	"qrscanner/internal/config"
	"qrscanner/internal/scansession"
	"qrscanner/pkg/camera/dircam"
	"qrscanner/pkg/clipboard"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/opener"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCommand runs a capture session on a directory of frames until a trusted
// URL is found, the stream ends or the user interrupts.
func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Scans a directory of frames as a live camera",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			loop, _ := cmd.Flags().GetBool("loop")
			open, _ := cmd.Flags().GetBool("open")
			copyURL, _ := cmd.Flags().GetBool("copy")
			quiet, _ := cmd.Flags().GetBool("quiet")

			out := cmd.OutOrStdout()
			if !quiet {
				printBanner(out, cfg.TrustedDomain)
			}

			sink := newTerminalSink(out)
			camera := dircam.New(dircam.Options{Dir: args[0], Interval: cfg.Camera.Interval, Loop: loop})
			opts := scansession.Options{Camera: camera}
			if open {
				opts.Opener = opener.NewBrowser()
			}
			if copyURL {
				opts.Clipboard = clipboard.NewSystem()
			}
			controller, err := newTerminalController(cfg, sink, opts)
			if err != nil {
				return err
			}
			defer controller.Close(context.Background())

			cmd.SilenceUsage = true
			if err := controller.Start(ctx); err != nil {
				return err
			}

			waitIdle(ctx, controller, sink)
			controller.Stop(context.Background())

			if sink.Last().Kind != domain.SignalShowResult {
				return errors.New("no trusted URL found")
			}

			if open {
				if err := controller.Open(ctx); err != nil {
					logger.Error(ctx, "could not open URL", zap.Error(err))
				}
			}
			if copyURL {
				if err := controller.CopyToClipboard(ctx); err != nil {
					logger.Error(ctx, "could not copy URL", zap.Error(err))
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("loop", false, "Replay the frames until a code is found")
	cmd.Flags().Bool("open", false, "Open the validated URL in the default browser")
	cmd.Flags().Bool("copy", false, "Copy the validated URL to the clipboard")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")

	return cmd
}

// waitIdle blocks until the session ends on its own or ctx is done.
func waitIdle(ctx context.Context, controller scansession.Controller, sink *terminalSink) {
	for {
		if state, _ := controller.State(); state == scansession.StateIdle {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-sink.changed:
		}
	}
}
