// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"
	"time"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckOutInput carries the parameters of a checkout operation.
type CheckOutInput struct {
	AssetID    uuid.UUID // The asset being handed out.
	UserID     uuid.UUID // The employee taking custody.
	Date       time.Time // Effective date of the checkout; may be backdated.
	ReturnDate time.Time // Contractual due date; required.
	Notes      string    // Optional free-form notes.
}

// CheckInInput carries the parameters of a checkin operation.
type CheckInInput struct {
	AssetID uuid.UUID          // The asset being returned.
	UserID  uuid.UUID          // The acting user; may differ from the original holder.
	Status  entity.AssetStatus // Post-return status: AVAILABLE, MAINTENANCE or RETIRED. Never IN_USE.
	Date    time.Time          // Effective date of the return; may be backdated.
	Notes   string             // Optional free-form notes.
}

// CustodyState is the ledger-derived view of one asset's custody.
type CustodyState struct {
	Asset     *entity.Asset `json:"asset"`
	Holder    *entity.User  `json:"holder,omitempty"`     // nil when the asset is at rest.
	HeldSince *time.Time    `json:"held_since,omitempty"` // Effective date of the active checkout.
	IsOverdue bool          `json:"is_overdue"`
}

// CustodyUsecase defines checkout/checkin state transitions and the custody
// read derived from the transaction ledger.
type CustodyUsecase interface {
	// CheckOut appends a CHECK_OUT transaction and marks the asset IN_USE with
	// the supplied due date, atomically. Fails with a conflict when the asset
	// is not AVAILABLE.
	CheckOut(ctx context.Context, input *CheckOutInput) (*entity.CustodyTransaction, error)

	// CheckIn appends a CHECK_IN transaction, sets the asset to the supplied
	// status and clears the due date, atomically. Fails with a conflict when
	// the asset is not checked out.
	CheckIn(ctx context.Context, input *CheckInInput) (*entity.CustodyTransaction, error)

	// GetCustody resolves the current holder and overdue flag from the ledger.
	GetCustody(ctx context.Context, assetID uuid.UUID) (*CustodyState, error)
}
