package ledger

import (
	"errors"
	"reflect"
	"testing"

	"klagtrack/internal/core"
)

func TestStoreGetMissingReturnsDefault(t *testing.T) {
	s := NewStore()
	got := s.Get("2024-03-01")
	if !got.IsZero() {
		t.Fatalf("missing date should be the default entry, got %+v", got)
	}
	if got.Expenses == nil {
		t.Fatal("default entry expenses should be an empty slice")
	}
}

func TestStorePutAndGet(t *testing.T) {
	s := NewStore()
	entry := core.DailyEntry{Hours: 5, Tips: 100, Expenses: []core.Expense{{Category: "food", Amount: 20}}}
	s.Put("2024-03-01", entry)

	got := s.Get("2024-03-01")
	if !reflect.DeepEqual(got, entry) {
		t.Fatalf("got %+v, want %+v", got, entry)
	}

	// Mutating the returned entry must not leak into the store.
	got.Expenses[0].Amount = 999
	if s.Get("2024-03-01").Expenses[0].Amount != 20 {
		t.Fatal("store state aliased by a returned entry")
	}
}

func TestStorePutReplacesWholeEntry(t *testing.T) {
	s := NewStore()
	s.Put("2024-03-01", core.DailyEntry{Hours: 5, Tips: 100, Notes: "old"})
	s.Put("2024-03-01", core.DailyEntry{Tips: 40})

	got := s.Get("2024-03-01")
	if got.Hours != 0 || got.Notes != "" || got.Tips != 40 {
		t.Fatalf("entry not replaced wholesale: %+v", got)
	}
}

func TestStorePutInvalidDateIsNoOp(t *testing.T) {
	s := NewStore()
	for _, date := range []string{"", "2024-3-1", "not-a-date", "2024-02-30"} {
		s.Put(date, core.DailyEntry{Tips: 10})
	}
	if s.Len() != 0 {
		t.Fatalf("invalid dates were stored: %v", s.Keys())
	}
}

func TestStoreReplaceAllAtomic(t *testing.T) {
	s := NewStore()
	s.Put("2024-03-01", core.DailyEntry{Tips: 100})

	err := s.ReplaceAll(map[string]core.DailyEntry{
		"2024-04-01": {Tips: 10},
		"bad-key":    {Tips: 20},
	})
	if !errors.Is(err, core.ErrCorruptImport) {
		t.Fatalf("expected ErrCorruptImport, got %v", err)
	}
	// Nothing may have been overwritten.
	if s.Len() != 1 || s.Get("2024-03-01").Tips != 100 {
		t.Fatalf("ledger partially overwritten: keys=%v", s.Keys())
	}

	if err := s.ReplaceAll(map[string]core.DailyEntry{"2024-04-01": {Tips: 10}}); err != nil {
		t.Fatalf("valid replace failed: %v", err)
	}
	if s.Len() != 1 || !s.Has("2024-04-01") {
		t.Fatalf("replace did not swap ledger: keys=%v", s.Keys())
	}
}

func TestStoreKeysSorted(t *testing.T) {
	s := NewStore()
	for _, d := range []string{"2024-03-05", "2024-01-01", "2024-02-29"} {
		s.Put(d, core.DailyEntry{Tips: 1})
	}
	want := []string{"2024-01-01", "2024-02-29", "2024-03-05"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestStoreExplicitZeroEntryIsStored(t *testing.T) {
	s := NewStore()
	s.Put("2024-03-01", core.DefaultEntry())
	if !s.Has("2024-03-01") {
		t.Fatal("explicit zero entry should be a stored key")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestGoalLifecycle(t *testing.T) {
	g := NewGoal()
	if g.Amount() != core.DefaultWeeklyGoal {
		t.Fatalf("default goal = %v", g.Amount())
	}

	if err := g.Set(750); err != nil {
		t.Fatalf("set: %v", err)
	}
	if g.Amount() != 750 {
		t.Fatalf("goal = %v, want 750", g.Amount())
	}

	for _, bad := range []float64{0, -10} {
		if err := g.Set(bad); !errors.Is(err, core.ErrGoalRejected) {
			t.Fatalf("Set(%v): expected ErrGoalRejected, got %v", bad, err)
		}
	}
	if g.Amount() != 750 {
		t.Fatalf("rejected set must retain previous goal, got %v", g.Amount())
	}

	g.Restore(-5)
	if g.Amount() != core.DefaultWeeklyGoal {
		t.Fatalf("restore of bad value should fall back to default, got %v", g.Amount())
	}
}
