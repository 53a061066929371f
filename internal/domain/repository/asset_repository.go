// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssetNotFound is returned when an asset is not found.
var ErrAssetNotFound = errors.New("asset not found")

// ErrAssetNotAvailable is returned when a guarded status transition finds the
// asset no longer AVAILABLE, typically because a concurrent writer claimed it.
var ErrAssetNotAvailable = errors.New("asset is not available")

// AssetRepository defines the interface for asset-related database operations.
type AssetRepository interface {
	// FindAssetByID retrieves an asset by its unique ID.
	FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)

	// FindAssetByCode retrieves an asset by its unique business code.
	FindAssetByCode(ctx context.Context, code string) (*entity.Asset, error)

	// FindOverdueAssets retrieves assets that are IN_USE with a return date
	// strictly before asOf.
	FindOverdueAssets(ctx context.Context, asOf time.Time) ([]*entity.Asset, error)

	// UpdateAssetCustody updates the denormalized custody fields (status and
	// return date) of an asset. A nil returnDate clears the due date.
	UpdateAssetCustody(ctx context.Context, id uuid.UUID, status entity.AssetStatus, returnDate *time.Time) error

	// MarkAssetCheckedOut transitions an asset from AVAILABLE to IN_USE with
	// the given due date. The status condition is part of the write, so a
	// concurrent writer that already claimed the asset makes this fail with
	// ErrAssetNotAvailable instead of overwriting its custody.
	MarkAssetCheckedOut(ctx context.Context, id uuid.UUID, returnDate time.Time) error
}
