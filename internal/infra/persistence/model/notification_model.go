package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs'
// table. DedupKey carries the (asset, holder, calendar day) identity; its
// unique index is what serializes racing scanner instances on the same day.
type NotificationLogModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type     string    `gorm:"type:text;not null;default:'EMAIL+PUSH'"`
	Status   string    `gorm:"type:text;not null"`
	Message  string    `gorm:"type:text"`
	SentAt   time.Time `gorm:"type:timestamptz;not null;index"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DedupKey string    `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
