package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"klagtrack/internal/backend"
	"klagtrack/internal/config"
	applog "klagtrack/internal/log"
	"klagtrack/internal/services"
)

// klagtrack-export dumps the stored ledger to a JSON file, for backups
// and for moving data between backends via the import endpoint.
func main() {
	outDir := flag.String("out", ".", "directory to write the export file into")
	flag.Parse()

	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentExport,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

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
	if err := svc.Load(context.Background()); err != nil {
		logger.Error("Failed to load ledger", applog.FieldError, err)
		os.Exit(1)
	}

	data, filename, err := svc.Export()
	if err != nil {
		logger.Error("Failed to serialize ledger", applog.FieldError, err)
		os.Exit(1)
	}

	path := filepath.Join(*outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Failed to write export file", applog.FieldError, err, applog.FieldFilename, path)
		os.Exit(1)
	}
	logger.Info("Ledger exported", applog.FieldFilename, path)
}
