// Package backend selects and constructs the persistence adapter the
// ledger is stored through.
package backend

import (
	"klagtrack/internal/persist"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result is the constructed KV plus its cleanup (nil when nothing to
// release).
type Result struct {
	KV      persist.KV
	Cleanup CleanupFunc
}

// Type names a persistence backend.
type Type string

const (
	MemoryBackend Type = "memory"
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string { return string(t) }

// IsValid reports whether the backend type is a known one.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds what each backend needs to be constructed.
type Config struct {
	Type Type

	// File backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}
