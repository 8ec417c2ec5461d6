package core

import (
	"encoding/json"
	"fmt"
)

// ParseLedger decodes a serialized ledger (JSON object keyed by date).
// Every key must be a valid date and every entry is re-normalized with the
// same rules as form input. Any structural corruption rejects the whole
// payload so a bulk import can stay all-or-nothing.
func ParseLedger(data []byte) (map[string]DailyEntry, error) {
	var raw map[string]DailyEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImport, err)
	}
	ledger := make(map[string]DailyEntry, len(raw))
	for date, entry := range raw {
		if !ValidDate(date) {
			return nil, fmt.Errorf("%w: bad date key %q", ErrCorruptImport, date)
		}
		ledger[date] = SanitizeEntry(entry)
	}
	return ledger, nil
}

// MarshalLedger serializes the ledger as pretty-printed JSON with 2-space
// indentation. Map keys marshal in sorted order, which for date keys means
// chronological order.
func MarshalLedger(ledger map[string]DailyEntry) ([]byte, error) {
	if ledger == nil {
		ledger = map[string]DailyEntry{}
	}
	return json.MarshalIndent(ledger, "", "  ")
}

// ExportFilename builds the conventional export name, e.g.
// klagtrack_export_2024-03-01.json.
func ExportFilename(prefix, date string) string {
	return fmt.Sprintf("%s_%s.json", prefix, date)
}
