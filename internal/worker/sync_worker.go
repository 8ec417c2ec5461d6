// Package worker runs the mirror pipeline: it consumes entry sync
// messages and appends the named entries to the external sheet. The
// worker only reads the ledger; all mutation stays in the service.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"klagtrack/internal/amqp"
	"klagtrack/internal/core"
	"klagtrack/internal/sheets"
)

// EntryReader is the slice of the ledger service the worker needs.
type EntryReader interface {
	Entry(date string) core.DailyEntry
}

type SyncWorker struct {
	client   *amqp.Client
	entries  EntryReader
	appender sheets.EntryAppender
}

func NewSyncWorker(client *amqp.Client, entries EntryReader, appender sheets.EntryAppender) *SyncWorker {
	return &SyncWorker{
		client:   client,
		entries:  entries,
		appender: appender,
	}
}

// Run consumes sync messages until ctx is done. Append failures are
// returned to the consumer, which nacks and requeues the message.
func (w *SyncWorker) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Sync worker starting")
	return w.client.ConsumeEntrySync(ctx, w.handle)
}

func (w *SyncWorker) handle(msg *amqp.EntrySyncMessage) error {
	ctx := context.Background()

	if !core.ValidDate(msg.Date) {
		// Drop rather than requeue: a bad date never becomes valid.
		slog.Warn("Dropping sync message with invalid date", "date", msg.Date)
		return nil
	}

	entry := w.entries.Entry(msg.Date)
	if err := w.appender.AppendEntry(ctx, msg.Date, entry); err != nil {
		return fmt.Errorf("mirror entry %s: %w", msg.Date, err)
	}

	slog.InfoContext(ctx, "Entry synced", "date", msg.Date)
	return nil
}
