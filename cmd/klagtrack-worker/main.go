package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"klagtrack/internal/amqp"
	"klagtrack/internal/backend"
	"klagtrack/internal/config"
	"klagtrack/internal/core"
	applog "klagtrack/internal/log"
	"klagtrack/internal/services"
	"klagtrack/internal/sheets/google"
	"klagtrack/internal/worker"
)

// freshReader reloads the ledger from storage before every read, so the
// worker always mirrors the entry state the server last persisted.
type freshReader struct {
	svc *services.LedgerService
}

func (r freshReader) Entry(date string) core.DailyEntry {
	if err := r.svc.Load(context.Background()); err != nil {
		slog.Error("Failed to refresh ledger before mirror", applog.FieldError, err)
	}
	return r.svc.Entry(date)
}

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting klagtrack-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the sync worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker reads the same ledger the server writes.
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}
	store, err := backend.Open(backendCfg, logger.WithComponent(applog.ComponentStorage).Logger)
	if err != nil {
		logger.Error("Failed to open data backend", applog.FieldError, err)
		os.Exit(1)
	}
	if store.Cleanup != nil {
		defer store.Cleanup()
	}

	svc := services.NewLedgerService(store.KV, nil, services.Settings{
		LedgerKey:    cfg.LedgerKey,
		GoalKey:      cfg.GoalKey,
		ExportPrefix: cfg.ExportPrefix,
		WeekScheme:   cfg.WeekSchemeValue(),
	})
	if err := svc.Load(ctx); err != nil {
		logger.Error("Failed to load ledger", applog.FieldError, err)
		os.Exit(1)
	}

	sheetsClient, err := google.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	syncWorker := worker.NewSyncWorker(amqpClient, freshReader{svc: svc}, sheetsClient)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return syncWorker.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
