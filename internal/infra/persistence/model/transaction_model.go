package model

import (
	"time"

	"github.com/google/uuid"
)

// CustodyTransactionModel is the GORM-specific struct for the
// 'custody_transactions' table. The table is append-only; no repository issues
// UPDATE or DELETE against it.
type CustodyTransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Action    string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"type:timestamptz;not null;index:idx_custody_tx_asset_date,priority:2"`
	Notes     string    `gorm:"type:text"`
	AssetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_custody_tx_asset_date,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustodyTransactionModel) TableName() string {
	return "custody_transactions"
}
