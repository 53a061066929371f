package service

import (
	"context"
	"time"
)

// Custody event types published after a committed ledger write.
const (
	EventTypeCheckedOut = "custody.checked_out"
	EventTypeCheckedIn  = "custody.checked_in"
)

// CustodyEvent announces a committed custody change to downstream consumers.
// Publishing is best-effort and never fails the originating operation.
type CustodyEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	EventType  string     `json:"event_type"`
	AssetID    string     `json:"asset_id"`
	AssetCode  string     `json:"asset_code"`
	UserID     string     `json:"user_id"`
	Date       time.Time  `json:"date"`                  // Effective date of the custody event.
	ReturnDate *time.Time `json:"return_date,omitempty"` // Due date; set for check-out events only.
}

// ScanTriggerEvent is the scheduler-emitted message that asks the worker to
// run one overdue scan. The scan is idempotent, so at-least-once delivery of
// this event is safe.
type ScanTriggerEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCustodyEvent publishes a custody change for async consumers.
	PublishCustodyEvent(ctx context.Context, event *CustodyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
