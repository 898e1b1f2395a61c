package requests

import "time"

// DocumentEvent is published whenever a record is persisted on the backend.
type DocumentEvent struct {
	Event     string    `json:"event"`
	Kind      string    `json:"kind"`
	RecordID  int64     `json:"record_id"`
	FileName  string    `json:"file_name,omitempty"`
	Source    string    `json:"source"`
	Created   bool      `json:"created"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}
