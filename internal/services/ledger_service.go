// Package services wires the pure core to storage and messaging: it owns
// the ledger's load/flush lifecycle and exposes every operation the HTTP
// layer and the worker need.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"klagtrack/internal/core"
	"klagtrack/internal/ledger"
	"klagtrack/internal/persist"
)

// SyncPublisher announces saved entries to the mirror pipeline.
// *amqp.Client satisfies it; a nil publisher disables announcements.
type SyncPublisher interface {
	PublishEntrySync(ctx context.Context, date string) error
}

// Settings carries the storage keys and derivation options.
type Settings struct {
	LedgerKey    string
	GoalKey      string
	ExportPrefix string
	WeekScheme   core.WeekScheme
}

func (s *Settings) applyDefaults() {
	if s.LedgerKey == "" {
		s.LedgerKey = persist.DefaultLedgerKey
	}
	if s.GoalKey == "" {
		s.GoalKey = persist.DefaultGoalKey
	}
	if s.ExportPrefix == "" {
		s.ExportPrefix = "klagtrack_export"
	}
	if !s.WeekScheme.Valid() {
		s.WeekScheme = core.WeekSchemeLegacy
	}
}

// LedgerService is the single mutation path for the ledger. Every write
// goes entry store → flush to storage → optional sync announcement.
type LedgerService struct {
	store     *ledger.Store
	goal      *ledger.Goal
	kv        persist.KV
	publisher SyncPublisher
	settings  Settings
}

func NewLedgerService(kv persist.KV, publisher SyncPublisher, settings Settings) *LedgerService {
	settings.applyDefaults()
	return &LedgerService{
		store:     ledger.NewStore(),
		goal:      ledger.NewGoal(),
		kv:        kv,
		publisher: publisher,
		settings:  settings,
	}
}

// Load restores the ledger and goal from storage. Missing or malformed
// stored data is treated as "no data" and logged, never as a fatal error.
func (s *LedgerService) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Load(ctx, s.settings.LedgerKey)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	if ok {
		entries, parseErr := core.ParseLedger([]byte(raw))
		if parseErr != nil {
			slog.WarnContext(ctx, "Stored ledger is malformed, starting empty",
				"key", s.settings.LedgerKey, "error", parseErr)
		} else if replaceErr := s.store.ReplaceAll(entries); replaceErr != nil {
			slog.WarnContext(ctx, "Stored ledger rejected, starting empty",
				"key", s.settings.LedgerKey, "error", replaceErr)
		}
	}

	rawGoal, ok, err := s.kv.Load(ctx, s.settings.GoalKey)
	if err != nil {
		return fmt.Errorf("load goal: %w", err)
	}
	if ok {
		amount, parseErr := strconv.ParseFloat(rawGoal, 64)
		if parseErr != nil {
			slog.WarnContext(ctx, "Stored goal is malformed, using default",
				"key", s.settings.GoalKey, "error", parseErr)
			amount = 0
		}
		s.goal.Restore(amount)
	}

	slog.InfoContext(ctx, "Ledger loaded",
		"entry_count", s.store.Len(), "goal", s.goal.Amount())
	return nil
}

// Entry returns the stored entry for date, or the default entry.
func (s *LedgerService) Entry(date string) core.DailyEntry {
	return s.store.Get(date)
}

// SaveEntry normalizes raw input and replaces the whole entry for date.
func (s *LedgerService) SaveEntry(ctx context.Context, date string, input core.EntryInput) (core.DailyEntry, error) {
	if !core.ValidDate(date) {
		return core.DailyEntry{}, core.ErrInvalidDate
	}
	entry := core.NormalizeEntry(input)
	s.store.Put(date, entry)

	if err := s.flush(ctx); err != nil {
		return core.DailyEntry{}, err
	}
	s.announce(ctx, date)

	slog.InfoContext(ctx, "Entry saved", "date", date,
		"tips", entry.Tips, "hours", entry.Hours, "expenses", len(entry.Expenses))
	return entry, nil
}

// CopyPreviousDay copies the previous day's entry onto date.
// ErrNoPriorEntry when the previous day has nothing stored.
func (s *LedgerService) CopyPreviousDay(ctx context.Context, date string) (core.DailyEntry, error) {
	if !core.ValidDate(date) {
		return core.DailyEntry{}, core.ErrInvalidDate
	}
	prev, err := core.PrevDay(date)
	if err != nil {
		return core.DailyEntry{}, err
	}
	if !s.store.Has(prev) {
		return core.DailyEntry{}, core.ErrNoPriorEntry
	}

	entry := s.store.Get(prev)
	s.store.Put(date, entry)
	if err := s.flush(ctx); err != nil {
		return core.DailyEntry{}, err
	}
	s.announce(ctx, date)

	slog.InfoContext(ctx, "Entry copied from previous day", "date", date, "from", prev)
	return entry, nil
}

// Import replaces the whole ledger from serialized JSON, all-or-nothing.
// Returns the number of imported entries.
func (s *LedgerService) Import(ctx context.Context, raw []byte) (int, error) {
	entries, err := core.ParseLedger(raw)
	if err != nil {
		return 0, err
	}
	if err := s.store.ReplaceAll(entries); err != nil {
		return 0, err
	}
	if err := s.flush(ctx); err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Ledger imported", "entry_count", len(entries))
	return len(entries), nil
}

// Export serializes the whole ledger as pretty JSON plus the conventional
// download filename for today.
func (s *LedgerService) Export() ([]byte, string, error) {
	data, err := core.MarshalLedger(s.store.Snapshot())
	if err != nil {
		return nil, "", fmt.Errorf("marshal ledger: %w", err)
	}
	return data, core.ExportFilename(s.settings.ExportPrefix, core.Today()), nil
}

// Goal returns the current weekly goal.
func (s *LedgerService) Goal() float64 {
	return s.goal.Amount()
}

// SetGoal validates and persists a new weekly goal. A rejected goal
// leaves the previous value in place.
func (s *LedgerService) SetGoal(ctx context.Context, amount float64) error {
	if err := s.goal.Set(amount); err != nil {
		return err
	}
	value := strconv.FormatFloat(amount, 'f', -1, 64)
	if err := s.kv.Save(ctx, s.settings.GoalKey, value); err != nil {
		return fmt.Errorf("persist goal: %w", err)
	}
	slog.InfoContext(ctx, "Weekly goal updated", "goal", amount)
	return nil
}

// WeekScheme reports the configured week numbering scheme.
func (s *LedgerService) WeekScheme() core.WeekScheme {
	return s.settings.WeekScheme
}

// DailySummary derives the figures for one date.
func (s *LedgerService) DailySummary(date string) core.DailySummary {
	return core.ComputeDailySummary(s.store, date)
}

// MonthlySummary derives the full-month figures including tax.
func (s *LedgerService) MonthlySummary(year, month int) core.MonthlySummary {
	return core.ComputeMonthlySummary(s.store, year, month)
}

// WeeklySummary derives the pre-tax week figures under the configured
// week scheme.
func (s *LedgerService) WeeklySummary(year, week int) core.WeeklySummary {
	return core.ComputeWeeklySummary(s.store, year, week, s.settings.WeekScheme)
}

// GoalProgress compares a week's income against the current goal.
func (s *LedgerService) GoalProgress(year, week int) core.GoalProgress {
	weekly := s.WeeklySummary(year, week)
	return core.Progress(weekly.TotalIncome, s.goal.Amount())
}

// MonthlyChart builds the per-day income series for a month.
func (s *LedgerService) MonthlyChart(year, month int) core.ChartSeries {
	return core.MonthlySeries(s.store, year, month)
}

// History returns one monthly summary per month with stored entries,
// newest first.
func (s *LedgerService) History() []core.MonthlySummary {
	var out []core.MonthlySummary
	for _, monthKey := range core.MonthKeys(s.store) {
		year, _ := strconv.Atoi(monthKey[:4])
		month, _ := strconv.Atoi(monthKey[5:7])
		out = append(out, core.ComputeMonthlySummary(s.store, year, month))
	}
	return out
}

// Overview bundles everything the overview screen shows for "now":
// current month, current week, goal progress and the month chart.
type Overview struct {
	Month    core.MonthlySummary `json:"month"`
	Week     core.WeeklySummary  `json:"week"`
	Goal     float64             `json:"goal"`
	Progress core.GoalProgress   `json:"progress"`
	Chart    core.ChartSeries    `json:"chart"`
}

// OverviewAt derives the overview for the moment t.
func (s *LedgerService) OverviewAt(t time.Time) Overview {
	year, week := core.WeekOf(t, s.settings.WeekScheme)
	weekly := s.WeeklySummary(year, week)
	return Overview{
		Month:    s.MonthlySummary(t.Year(), int(t.Month())),
		Week:     weekly,
		Goal:     s.goal.Amount(),
		Progress: core.Progress(weekly.TotalIncome, s.goal.Amount()),
		Chart:    s.MonthlyChart(t.Year(), int(t.Month())),
	}
}

func (s *LedgerService) flush(ctx context.Context) error {
	data, err := core.MarshalLedger(s.store.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := s.kv.Save(ctx, s.settings.LedgerKey, string(data)); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// announce publishes a sync message. Failures are logged and dropped:
// the entry is already saved locally.
func (s *LedgerService) announce(ctx context.Context, date string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEntrySync(ctx, date); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message", "date", date, "error", err)
	}
}
