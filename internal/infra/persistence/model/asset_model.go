// Package model holds the GORM-specific table structs, kept separate from the
// domain entities so persistence concerns never leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel is the GORM-specific struct for the 'assets' table.
type AssetModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code       string     `gorm:"type:text;not null;uniqueIndex"`
	Name       string     `gorm:"type:text;not null"`
	TypeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:text;not null;default:'AVAILABLE'"`
	ReturnDate *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}
