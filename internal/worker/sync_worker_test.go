package worker

import (
	"context"
	"errors"
	"testing"

	"klagtrack/internal/amqp"
	"klagtrack/internal/core"
)

type fakeReader map[string]core.DailyEntry

func (f fakeReader) Entry(date string) core.DailyEntry {
	if e, ok := f[date]; ok {
		return e
	}
	return core.DefaultEntry()
}

type fakeAppender struct {
	rows map[string]core.DailyEntry
	fail bool
}

func (f *fakeAppender) AppendEntry(_ context.Context, date string, entry core.DailyEntry) error {
	if f.fail {
		return errors.New("sheet unavailable")
	}
	if f.rows == nil {
		f.rows = map[string]core.DailyEntry{}
	}
	f.rows[date] = entry
	return nil
}

func TestHandleMirrorsEntry(t *testing.T) {
	reader := fakeReader{"2024-03-01": {Hours: 5, Tips: 100}}
	appender := &fakeAppender{}
	w := NewSyncWorker(nil, reader, appender)

	if err := w.handle(amqp.NewEntrySyncMessage("2024-03-01")); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got := appender.rows["2024-03-01"]; got.Tips != 100 {
		t.Fatalf("mirrored entry = %+v", got)
	}
}

func TestHandleDropsInvalidDate(t *testing.T) {
	appender := &fakeAppender{fail: true}
	w := NewSyncWorker(nil, fakeReader{}, appender)

	// Invalid dates must ack (nil) so they are not requeued forever.
	if err := w.handle(amqp.NewEntrySyncMessage("not-a-date")); err != nil {
		t.Fatalf("expected drop, got %v", err)
	}
}

func TestHandlePropagatesAppendFailure(t *testing.T) {
	reader := fakeReader{"2024-03-01": {Tips: 10}}
	appender := &fakeAppender{fail: true}
	w := NewSyncWorker(nil, reader, appender)

	if err := w.handle(amqp.NewEntrySyncMessage("2024-03-01")); err == nil {
		t.Fatal("append failure should be returned for requeue")
	}
}
