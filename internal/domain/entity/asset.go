// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssetStatus represents the lifecycle state of an asset.
type AssetStatus string

const (
	// AssetStatusAvailable indicates the asset is at rest and may be checked out.
	AssetStatusAvailable AssetStatus = "AVAILABLE"
	// AssetStatusInUse indicates the asset is currently checked out to a holder.
	AssetStatusInUse AssetStatus = "IN_USE"
	// AssetStatusMaintenance indicates the asset is undergoing maintenance and cannot be checked out.
	AssetStatusMaintenance AssetStatus = "MAINTENANCE"
	// AssetStatusRetired indicates the asset is permanently out of circulation.
	AssetStatusRetired AssetStatus = "RETIRED"
)

// String returns the string representation of the AssetStatus.
func (s AssetStatus) String() string {
	return string(s)
}

// IsValid checks if the AssetStatus is a valid value.
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusInUse, AssetStatusMaintenance, AssetStatusRetired:
		return true
	default:
		return false
	}
}

// Asset represents a trackable physical asset.
//
// Status and ReturnDate are a denormalized cache of the custody ledger's tip:
// Status is IN_USE exactly when the asset's latest transaction by effective
// date is a CHECK_OUT. They are maintained transactionally by the checkout and
// checkin operations; the ledger remains the ground truth in any ambiguity.
type Asset struct {
	ID         uuid.UUID   `json:"id"`          // The Global Unique Identifier (GUID) for the asset.
	Code       string      `json:"code"`        // The unique business code printed on the asset label.
	Name       string      `json:"name"`        // Human-readable asset name.
	TypeID     uuid.UUID   `json:"type_id"`     // Reference to the asset's classification.
	Status     AssetStatus `json:"status"`      // Denormalized custody status, cached from the ledger.
	ReturnDate *time.Time  `json:"return_date"` // Contractual due date; set while IN_USE, nil otherwise.
	CreatedAt  time.Time   `json:"created_at"`  // Timestamp of when this asset was registered.
	UpdatedAt  time.Time   `json:"updated_at"`  // Timestamp of the last modification.
}
