// Package persist defines the key-value port the ledger is persisted
// through. The core never touches storage directly; it serializes to text
// and hands it to one of the adapters behind this interface.
package persist

import "context"

// KV is a text key-value store. Load reports ok=false when the key was
// never saved, which callers must treat as "no data", not an error.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Well-known storage keys. The ledger JSON and the weekly goal live under
// independent keys with independent lifecycles.
const (
	DefaultLedgerKey = "klagtrack_data"
	DefaultGoalKey   = "klagtrack_weekly_goal"
)
