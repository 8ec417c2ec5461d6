package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"klagtrack/internal/core"
	"klagtrack/internal/persist"
)

type Config struct {
	// HTTP server
	Port string

	// Persistence backend: memory, file or sqlite
	DataBackend  string
	DataDir      string
	SQLiteDBPath string

	// Storage keys
	LedgerKey string
	GoalKey   string

	// Export
	ExportPrefix string

	// Week numbering: legacy (Jan-1 anchored) or iso
	WeekScheme string

	// AMQP (optional; empty URL disables entry sync publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets mirror (worker only)
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend:  getEnv("DATA_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/klagtrack.db"),

		LedgerKey: getEnv("LEDGER_KEY", persist.DefaultLedgerKey),
		GoalKey:   getEnv("GOAL_KEY", persist.DefaultGoalKey),

		ExportPrefix: getEnv("EXPORT_PREFIX", "klagtrack_export"),
		WeekScheme:   getEnv("WEEK_SCHEME", string(core.WeekSchemeLegacy)),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "klagtrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "sync_entries"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Entries"),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory":
	case "file":
		if c.DataDir == "" {
			errs = append(errs, "data directory cannot be empty when using file backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory file sqlite]", c.DataBackend))
	}

	if c.LedgerKey == "" || c.GoalKey == "" {
		errs = append(errs, "ledger and goal storage keys cannot be empty")
	}
	if c.LedgerKey == c.GoalKey {
		errs = append(errs, "ledger and goal storage keys must be distinct")
	}

	if c.ExportPrefix == "" {
		errs = append(errs, "export prefix cannot be empty")
	}

	if !core.WeekScheme(c.WeekScheme).Valid() {
		errs = append(errs, fmt.Sprintf("invalid week scheme '%s': must be legacy or iso", c.WeekScheme))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// WeekSchemeValue returns the configured week scheme as a typed value.
func (c *Config) WeekSchemeValue() core.WeekScheme {
	return core.WeekScheme(c.WeekScheme)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
