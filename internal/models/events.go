package models

import "time"

// Event types
const (
	EventTypeReportGenerated = "REPORT_GENERATED"
	EventTypeReportFailed    = "REPORT_FAILED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportGeneratedEvent published after a report run completes
type ReportGeneratedEvent struct {
	BaseEvent
	Report      string    `json:"report"`
	DurationMS  int64     `json:"duration_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportFailedEvent published when a report run fails
type ReportFailedEvent struct {
	BaseEvent
	Report string `json:"report"`
	Reason string `json:"reason"`
}
