package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/lockdesk/lockdesk/internal/assistant"
	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/export"
	"github.com/lockdesk/lockdesk/internal/library"
	"github.com/lockdesk/lockdesk/internal/repository"
	"github.com/lockdesk/lockdesk/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()
	slogger := slog.Default()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Store
	db, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.HealthCheck(ctx, 3*time.Second, slogger); err != nil {
		log.Fatalf("store health failed: %v", err)
	}
	if err := db.Migrate(ctx, slogger); err != nil {
		log.Fatalf("migrating store: %v", err)
	}
	log.Infow("store health OK", "driver", cfg.Database.Driver)

	jobs := repository.NewJobLogRepository(db, slogger)

	// Document library (optional: the daemon runs without one)
	var lib *library.Library
	if cfg.Library.ManifestPath != "" {
		lib, err = library.Load(cfg.Library.ManifestPath, slogger)
		if err != nil {
			log.Warnw("library manifest unavailable", "path", cfg.Library.ManifestPath, "err", err)
			lib = nil
		} else if cfg.Library.WatchReload {
			if err := lib.Watch(ctx, 0); err != nil {
				log.Warnw("library watch failed", "err", err)
			}
		}
	}
	if lib == nil {
		lib = library.Empty(slogger)
	}

	// Assistant backend
	asst := assistant.NewClient(cfg.Assistant, slogger)

	// HTTP server
	srv := server.New(jobs, asst, lib, export.NewService(jobs, slogger), logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("HTTP serving on %s", cfg.Server.Addr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
