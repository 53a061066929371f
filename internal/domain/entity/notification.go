// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the aggregate outcome of one delivery attempt.
type NotificationStatus string

const (
	// NotificationStatusSuccess indicates at least one channel delivered.
	NotificationStatusSuccess NotificationStatus = "SUCCESS"
	// NotificationStatusFailed indicates every channel failed.
	NotificationStatusFailed NotificationStatus = "FAILED"
)

// String returns the string representation of the NotificationStatus.
func (s NotificationStatus) String() string {
	return string(s)
}

// NotificationTypeEmailPush is the channel set used by the overdue dispatcher:
// email (required contact) plus best-effort push.
const NotificationTypeEmailPush = "EMAIL+PUSH"

// NotificationLog records exactly one overdue-notification attempt for an
// (asset, holder) pair. It doubles as the dedup guard's evidence: at most one
// row may exist per asset, holder and calendar day, enforced by DedupKey's
// unique index. Rows are written by the scheduled scan only and never updated.
type NotificationLog struct {
	ID       uuid.UUID          `json:"id"`        // The Global Unique Identifier (GUID) for the log entry.
	Type     string             `json:"type"`      // Channel set attempted, e.g. "EMAIL+PUSH".
	Status   NotificationStatus `json:"status"`    // SUCCESS if any channel delivered, FAILED otherwise.
	Message  string             `json:"message"`   // Failure detail or delivery summary.
	SentAt   time.Time          `json:"sent_at"`   // Timestamp of the attempt.
	UserID   uuid.UUID          `json:"user_id"`   // The holder who was notified.
	AssetID  uuid.UUID          `json:"asset_id"`  // The overdue asset.
	DedupKey string             `json:"dedup_key"` // "<assetID>:<userID>:<YYYY-MM-DD>", unique per calendar day.
}

// NotificationDedupKey builds the once-per-day semaphore key for an
// (asset, holder) pair. day must already be expressed in the notification
// reference timezone.
func NotificationDedupKey(assetID, userID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", assetID, userID, day.Format("2006-01-02"))
}
