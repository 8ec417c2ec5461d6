package amqp

import (
	"testing"
	"time"
)

func TestEntrySyncMessageRoundTrip(t *testing.T) {
	msg := NewEntrySyncMessage("2024-03-01")
	if msg.Date != "2024-03-01" {
		t.Fatalf("date = %s", msg.Date)
	}
	if msg.Timestamp.IsZero() || time.Since(msg.Timestamp) > time.Minute {
		t.Fatalf("timestamp not set: %v", msg.Timestamp)
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := EntrySyncMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Date != msg.Date {
		t.Fatalf("round trip date = %s", back.Date)
	}
}

func TestEntrySyncMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := EntrySyncMessageFromJSON([]byte("{")); err == nil {
		t.Fatal("expected error")
	}
}
