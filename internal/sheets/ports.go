// Package sheets defines the outbound port for mirroring ledger entries
// to an external spreadsheet.
package sheets

import (
	"context"

	"klagtrack/internal/core"
)

// EntryAppender mirrors one day's entry to the external sheet.
// Appending the same date twice is acceptable; the sheet is an audit
// trail of syncs, not the system of record.
type EntryAppender interface {
	AppendEntry(ctx context.Context, date string, entry core.DailyEntry) error
}
