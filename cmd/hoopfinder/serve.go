package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/wtennis/hoop-finder/internal/gis"
	appLog "github.com/wtennis/hoop-finder/internal/log"
	"github.com/wtennis/hoop-finder/internal/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset and calendar feeds over HTTP, refreshing on a cron schedule",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg)

	// refresh runs the whole pipeline. Failures keep the previous dataset
	// in place; a fresh process without data answers 503 until one succeeds.
	refresh := func() {
		fetcher := gis.NewFetcher(cfg.CacheDir)
		results, errs := fetcher.FetchAll(ctx, gisSources(cfg))
		for _, err := range errs {
			appLog.Error("refresh: source fetch failed", err)
		}
		if len(results) > 0 {
			if err := writeSources(cfg, results); err != nil {
				appLog.Error("refresh: writing sources failed", err)
			}
		}

		ds, err := buildOutputs(cfg)
		if err != nil {
			appLog.Error("refresh: build failed", err)
			return
		}
		if err := srv.SetDataset(ds); err != nil {
			appLog.Error("refresh: installing dataset failed", err)
		}
	}
	refresh()

	c := cron.New()
	if _, err := c.AddFunc(cfg.RefreshCron, refresh); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", cfg.RefreshCron, err)
	}
	c.Start()
	defer c.Stop()
	appLog.Info("refresh scheduled", "cron", cfg.RefreshCron)

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("http server listening", "listen", "http://"+cfg.Listen)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		appLog.Info("signal received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
