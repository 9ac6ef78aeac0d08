package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pombredanne/anitya/pkg/checker"
	"github.com/pombredanne/anitya/pkg/config"
	"github.com/pombredanne/anitya/pkg/defaults"
	"github.com/pombredanne/anitya/pkg/logging"
	"github.com/pombredanne/anitya/pkg/server"
)

const (
	name           = "anityad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/pombredanne/anitya/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the check daemon and blocks until shutdown. It runs a
// check over the configured projects immediately, then again on every
// interval tick, publishing each run report on the HTTP server.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}

	srvCfg := server.NewConfig()
	srvCfg.Name = name
	srvCfg.Version = version
	srv := server.New(srvCfg)

	c := &checker.Checker{}
	interval := checkInterval()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		runOnce(gctx, c, cfg, srv)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				runOnce(gctx, c, cfg, srv)
			}
		}
	})

	if err := g.Wait(); err != nil {
		slog.Error("daemon exited with error", "error", err)
		return err
	}

	slog.Info("daemon stopped gracefully")
	return nil
}

// runOnce executes one check run. Failures are logged, not fatal; the
// daemon keeps serving the last good report.
func runOnce(ctx context.Context, c *checker.Checker, cfg *config.Config, srv *server.Server) {
	report, err := c.Run(ctx, cfg)
	if err != nil {
		slog.Error("check run failed", "error", err)
		return
	}
	srv.SetReport(report)
}

// checkInterval reads CHECK_INTERVAL_SECONDS, falling back to the
// package default.
func checkInterval() time.Duration {
	if intervalStr := os.Getenv("CHECK_INTERVAL_SECONDS"); intervalStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(intervalStr, "%d", &seconds); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaults.CheckInterval
}
