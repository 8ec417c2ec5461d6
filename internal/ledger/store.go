// Package ledger holds the mutable state of the tracker: the date-keyed
// entry store and the weekly goal. Both are constructed explicitly at
// startup and passed by reference; nothing here is a package-level
// singleton.
package ledger

import (
	"sort"
	"sync"

	"klagtrack/internal/core"
)

// Store owns all DailyEntry instances. Entries are replaced wholesale on
// every edit to a date; there is no field-level patching and no in-app
// delete (only full replacement via import). The RWMutex serializes
// writes against concurrent summary reads when the store is shared
// across goroutines.
type Store struct {
	mu      sync.RWMutex
	entries map[string]core.DailyEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]core.DailyEntry)}
}

var _ core.Source = (*Store)(nil)

// Get returns the entry for date, or the default zero entry when the date
// was never stored. It never fails, and the returned entry does not alias
// stored state.
func (s *Store) Get(date string) core.DailyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[date]; ok {
		return e.Clone()
	}
	return core.DefaultEntry()
}

// Has reports whether date has an explicitly stored entry.
func (s *Store) Has(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[date]
	return ok
}

// Put replaces the whole entry for date. An invalid date key makes the
// call a no-op rather than an error.
func (s *Store) Put(date string, entry core.DailyEntry) {
	if !core.ValidDate(date) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[date] = entry.Clone()
}

// ReplaceAll swaps in a new ledger, as used by import. Every key is
// checked first and a single bad key rejects the whole operation, leaving
// the current ledger untouched.
func (s *Store) ReplaceAll(entries map[string]core.DailyEntry) error {
	next := make(map[string]core.DailyEntry, len(entries))
	for date, entry := range entries {
		if !core.ValidDate(date) {
			return core.ErrCorruptImport
		}
		next[date] = core.SanitizeEntry(entry)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = next
	return nil
}

// Keys returns all stored dates in chronological order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns a deep copy of the ledger for serialization.
func (s *Store) Snapshot() map[string]core.DailyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]core.DailyEntry, len(s.entries))
	for date, entry := range s.entries {
		out[date] = entry.Clone()
	}
	return out
}
