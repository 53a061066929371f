// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionAction represents the kind of custody event recorded in the ledger.
type TransactionAction string

const (
	// ActionCheckOut records custody being handed to a user.
	ActionCheckOut TransactionAction = "CHECK_OUT"
	// ActionCheckIn records custody being returned.
	ActionCheckIn TransactionAction = "CHECK_IN"
)

// String returns the string representation of the TransactionAction.
func (a TransactionAction) String() string {
	return string(a)
}

// IsValid checks if the TransactionAction is a valid value.
func (a TransactionAction) IsValid() bool {
	switch a {
	case ActionCheckOut, ActionCheckIn:
		return true
	default:
		return false
	}
}

// CustodyTransaction is one immutable entry of an asset's custody ledger.
//
// Date is the effective date of the event, not the insertion time; entries may
// be backdated at entry time. CreatedAt records insertion order and is used as
// the tiebreak when two entries share the same effective date. Rows are only
// ever appended, never updated or deleted.
type CustodyTransaction struct {
	ID        uuid.UUID         `json:"id"`         // The Global Unique Identifier (GUID) for the ledger entry.
	Action    TransactionAction `json:"action"`     // CHECK_OUT or CHECK_IN.
	Date      time.Time         `json:"date"`       // Effective date of the custody event.
	Notes     string            `json:"notes"`      // Optional free-form notes supplied at entry time.
	AssetID   uuid.UUID         `json:"asset_id"`   // The asset this entry belongs to.
	UserID    uuid.UUID         `json:"user_id"`    // Holder for CHECK_OUT; returning agent for CHECK_IN.
	CreatedAt time.Time         `json:"created_at"` // Insertion timestamp; tiebreak for equal effective dates.
}
