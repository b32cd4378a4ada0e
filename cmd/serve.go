package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"qrscanner/internal/api"
	"qrscanner/internal/api/handler/v1handler"
	"qrscanner/internal/config"
	"qrscanner/internal/display"
	"qrscanner/internal/history"
	"qrscanner/internal/scansession"
	"qrscanner/internal/worker"
	"qrscanner/pkg/camera/pushcam"
	"qrscanner/pkg/clipboard"
	"qrscanner/pkg/decoder/zxing"
	"qrscanner/pkg/logger"
	"qrscanner/pkg/metrics"
	"qrscanner/pkg/notify"
	"qrscanner/pkg/opener"
	"qrscanner/pkg/urlpolicy"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// newOpener returns the opener selected by cfg, a cleanup func, and nil for
// the "none" mode.
func newOpener(cfg *config.Config) (scansession.Opener, func()) {
	switch cfg.Opener.Mode {
	case config.OpenerChromedp:
		chrome := opener.NewChrome(opener.ChromeOptions{
			Headless: cfg.Opener.Headless,
			ExecPath: cfg.Opener.ChromePath,
		})

		return chrome, chrome.Close
	case config.OpenerBrowser:
		return opener.NewBrowser(), func() {}
	default:
		return nil, func() {}
	}
}

func newClipboard(ctx context.Context, cfg *config.Config) scansession.Clipboard {
	if !cfg.Clipboard.Enabled {
		return nil
	}

	cb := clipboard.NewSystem()
	if !cb.Available() {
		logger.Warn(ctx, "no clipboard utility found, copy will fail")
	}

	return cb
}

// newNotifier fans notifications out to the display hub and, when configured,
// to redis through an async queue so a slow broker never stalls the session.
func newNotifier(ctx context.Context, g *errgroup.Group, cfg *config.Config, hub *display.Hub) (notify.Notifier, func()) {
	if cfg.Redis.URL == "" {
		return hub, func() {}
	}

	rds, err := notify.NewRedis(ctx, notify.RedisOptions{
		URL:          cfg.Redis.URL,
		Channel:      cfg.Redis.Channel,
		DialTimeout:  cfg.Redis.DialTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	async := notify.NewAsync(rds, notify.DefaultQueueSize)
	g.Go(func() error {
		async.Run(ctx)

		return nil
	})

	return notify.Multi{hub, async}, func() {
		async.Close()
		if err := rds.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server, the scan session and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)

			policy, err := urlpolicy.New(cfg.TrustedDomain)
			if err != nil {
				logger.Fatal(ctx, "invalid trusted domain", zap.Error(err))
			}

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			scanMetrics := metrics.New(prometheus.DefaultRegisterer)

			hub, err := display.New(display.Options{MeterProvider: mp})
			if err != nil {
				logger.Fatal(ctx, "could not create display hub", zap.Error(err))
			}

			notifier, closeNotifier := newNotifier(gctx, g, cfg, hub)

			opn, closeOpener := newOpener(cfg)
			defer closeOpener()

			camera := pushcam.New(pushcam.Options{Buffer: cfg.Camera.Buffer})

			var (
				recorder      scansession.Recorder
				reader        v1handler.HistoryReader
				closeRecorder = func(context.Context) {}
			)
			if cfg.History.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				rec := history.NewRecorder(strg, history.RecorderOptions{})
				g.Go(func() error {
					// writes outlive the signal so Close can flush
					rec.Run(context.WithoutCancel(gctx))

					return nil
				})
				closeRecorder = rec.Close
				recorder = rec
				reader = history.NewService(strg)

				riverClient, err := worker.Start(ctx, strg.Pool, strg, worker.Options{
					MaxWorkers:    cfg.History.Workers,
					PruneInterval: cfg.History.PruneInterval,
					Retention:     cfg.History.Retention,
					Keep:          cfg.History.Keep,
				})
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}
				defer func() {
					stopCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()
					logger.Info(ctx, "stopping workers...")
					if err := riverClient.Stop(stopCtx); err != nil {
						logger.Warn(ctx, "could not stop workers", zap.Error(err))
					}
				}()
			}

			controller, err := scansession.New(scansession.Options{
				Policy:    policy,
				Decoder:   zxing.New(zxing.Options{TryHarder: cfg.Camera.TryHarder, Metrics: scanMetrics}),
				Camera:    camera,
				Sink:      hub,
				Notifier:  notifier,
				Opener:    opn,
				Clipboard: newClipboard(ctx, cfg),
				Recorder:  recorder,
				Metrics:   scanMetrics,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create scan session", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{
					Controller: controller,
					Display:    hub,
					Frames:     camera,
					History:    reader,
				},
				MeterProvider: mp,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})

			// wait for interrupt or a failed component
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop webserver", zap.Error(err))
			}
			controller.Close(shutdownCtx)
			closeRecorder(shutdownCtx)
			closeNotifier()

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server stopped with error", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
