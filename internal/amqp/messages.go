package amqp

import (
	"encoding/json"
	"time"
)

// EntrySyncMessage asks the mirror worker to re-sync one ledger date.
// It carries only the date; the worker reads the current entry from the
// ledger, so a burst of edits to the same day collapses to the latest
// state.
type EntrySyncMessage struct {
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntrySyncMessage(date string) *EntrySyncMessage {
	return &EntrySyncMessage{Date: date, Timestamp: time.Now()}
}

func (m *EntrySyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EntrySyncMessageFromJSON(data []byte) (*EntrySyncMessage, error) {
	var msg EntrySyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
