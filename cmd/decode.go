package main

import (
	"context"
	"fmt"
	"os"
	"qrscanner/internal/config"
	"qrscanner/internal/scansession"
	"qrscanner/pkg/decoder/zxing"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/urlpolicy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// decodeCommand decodes image files through the one-shot image channel. It
// exits non-zero when any file does not yield a trusted URL.
func decodeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE...",
		Short: "Decodes QR codes from image files and validates them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sink := newTerminalSink(cmd.OutOrStdout())

			controller, err := newTerminalController(cfg, sink, scansession.Options{})
			if err != nil {
				return err
			}
			defer controller.Close(ctx)

			failed := 0
			for _, file := range args {
				if !decodeFile(ctx, controller, file) {
					failed++
				}
			}
			if failed > 0 {
				cmd.SilenceUsage = true

				return fmt.Errorf("%d of %d files did not yield a trusted URL", failed, len(args))
			}

			return nil
		},
	}

	return cmd
}

func decodeFile(ctx context.Context, controller scansession.Controller, file string) bool {
	f, err := os.Open(file)
	if err != nil {
		logger.Error(ctx, "could not open image", zap.String("file", file), zap.Error(err))

		return false
	}
	defer func() { _ = f.Close() }()

	return controller.UploadImage(ctx, f).Kind == domain.SignalShowResult
}

// newTerminalController fills opts with the configured policy and decoder and
// reports to sink.
func newTerminalController(cfg *config.Config, sink *terminalSink, opts scansession.Options) (scansession.Controller, error) {
	policy, err := urlpolicy.New(cfg.TrustedDomain)
	if err != nil {
		return nil, err
	}

	opts.Policy = policy
	opts.Decoder = zxing.New(zxing.Options{TryHarder: cfg.Camera.TryHarder})
	opts.Sink = sink
	opts.Notifier = sink

	return scansession.New(opts)
}
