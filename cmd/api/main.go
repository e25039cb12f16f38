package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hamed0406/keepalive/internal/code"
	"github.com/hamed0406/keepalive/internal/config"
	"github.com/hamed0406/keepalive/internal/httpapi"
	"github.com/hamed0406/keepalive/internal/logging"
	"github.com/hamed0406/keepalive/internal/metrics"
	"github.com/hamed0406/keepalive/internal/probe"
	"github.com/hamed0406/keepalive/internal/registry"
	"github.com/hamed0406/keepalive/internal/scheduler"
	"github.com/hamed0406/keepalive/internal/store"
	filestore "github.com/hamed0406/keepalive/internal/store/file"
	memstore "github.com/hamed0406/keepalive/internal/store/memory"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var st store.Store = memstore.New()
	if cfg.DataFile != "" {
		st = filestore.New(cfg.DataFile)
	}

	httpChecker := probe.NewHTTPChecker(cfg.ProbeTimeout)
	httpChecker.StrictStatus = cfg.StrictStatus
	var checker probe.Checker = httpChecker
	if cfg.RetryAttempts > 1 {
		checker = &probe.RetryChecker{
			Inner:    httpChecker,
			Attempts: cfg.RetryAttempts,
			Backoff:  cfg.RetryBackoff,
		}
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	reg := registry.New(st, checker, code.NewGenerator(), logger, collector)
	reg.Pacing = cfg.ProbePacing

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scheduler.NewSweeper(logger, reg, cfg.InitialDelay, cfg.SweepInterval)
	go sweeper.Run(ctx)

	api := httpapi.NewServer(logger, reg)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(cfg.PublicRPM),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.String("data_file", cfg.DataFile),
		zap.Duration("sweep_interval", cfg.SweepInterval),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	logger.Info("api_stopped")
}
