// Command metacache rebuilds the file metadata cache from the SQLite
// attachment store, logs its stats and writes a JSON snapshot to stdout.
// With METACACHE_LISTEN set it keeps running and serves /metrics.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/efficientgo/core/errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homier/probemap/metacache"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		level.Error(logger).Log("msg", "metacache failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log.Logger) error {
	cfg := loadConfig()

	db, err := sql.Open("sqlite3", cfg.dbPath)
	if err != nil {
		return errors.Wrapf(err, "open %s", cfg.dbPath)
	}
	defer db.Close()

	reg := prometheus.NewRegistry()

	cache, err := metacache.New(
		metacache.Config{Capacity: cfg.capacity, LoadFactor: cfg.loadFactor},
		metacache.WithLogger(logger),
		metacache.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}

	if _, err := cache.Warm(ctx, metacache.SQLSource{DB: db}); err != nil {
		return err
	}

	snap, err := cache.Snapshot()
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(append(snap, '\n')); err != nil {
		return errors.Wrap(err, "write snapshot")
	}

	if cfg.listen == "" {
		return nil
	}

	return serveMetrics(ctx, logger, cfg.listen, reg)
}

func serveMetrics(ctx context.Context, logger log.Logger, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			level.Warn(logger).Log("msg", "metrics server shutdown", "err", err)
		}
	}()

	level.Info(logger).Log("msg", "serving metrics", "addr", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve metrics")
	}

	return nil
}
