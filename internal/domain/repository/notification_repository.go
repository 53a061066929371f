package repository

import (
	"context"
	"errors"
	"time"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateNotification is returned when a notification log insert collides
// with an existing row for the same asset, holder and calendar day. Racing
// scanner instances resolve their check-then-insert window through this error.
var ErrDuplicateNotification = errors.New("notification already recorded for this day")

// NotificationRepository defines the interface for the notification audit log.
// Rows double as the overdue dedup guard's state; they are never updated.
type NotificationRepository interface {
	// CreateNotificationLog persists one delivery attempt. Returns
	// ErrDuplicateNotification when the day's dedup key already exists.
	CreateNotificationLog(ctx context.Context, log *entity.NotificationLog) error

	// HasNotificationInWindow reports whether a log row exists for the given
	// asset and holder with sent_at inside [start, end).
	HasNotificationInWindow(ctx context.Context, assetID, userID uuid.UUID, start, end time.Time) (bool, error)
}
