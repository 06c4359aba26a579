package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/topolog/config"
	"github.com/philipp01105/topolog/logger"
	"github.com/philipp01105/topolog/metrics"
)

var log = logger.Target("topolog/watch")

func newWatchCmd(o *options) *cobra.Command {
	var metricsAddr string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Apply the configuration and re-initialize whenever the file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Apply(); err != nil {
				return err
			}
			log.Infof("filter %q applied", cfg.Log.Filter)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if o.configPath != "" {
				w := config.NewWatcher(o.configPath,
					config.WithDebounce(debounce),
					config.WithLoader(o.load),
				)
				w.OnReload(func(c config.Config) {
					if err := c.Apply(); err != nil {
						log.Errorf("apply %s: %v", o.configPath, err)
						return
					}
					log.Infof("filter %q applied", c.Log.Filter)
				})
				if err := w.Start(); err != nil {
					return err
				}
				defer func() {
					if err := w.Stop(); err != nil {
						log.Warnf("stop watcher: %v", err)
					}
				}()
			}

			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           metricsMux(),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Errorf("metrics server: %v", err)
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := srv.Shutdown(shutdownCtx); err != nil {
						log.Warnf("metrics server shutdown: %v", err)
					}
				}()
				log.Infof("serving metrics on %s", metricsAddr)
			}

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultDebounce, "Quiet period before reloading a changed file")
	return cmd
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(metrics.NewRegistry(metrics.NewCollector(nil))))
	return mux
}
