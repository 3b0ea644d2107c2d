package tools

import "time"

// InvokedEvent is published to the audit topic after each tool call.
type InvokedEvent struct {
	Tool       string    `json:"tool"`
	Succeeded  bool      `json:"succeeded"`
	DurationMS int64     `json:"duration_ms"`
	InvokedAt  time.Time `json:"invoked_at"`
}
