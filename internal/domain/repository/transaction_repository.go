package repository

import (
	"context"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for the append-only custody
// ledger. There are deliberately no update or delete operations.
type TransactionRepository interface {
	// CreateTransaction appends one custody event to the ledger.
	CreateTransaction(ctx context.Context, transaction *entity.CustodyTransaction) error

	// FindTransactionsByAsset retrieves an asset's full ledger ordered by
	// effective date descending, with insertion order (created_at, id) as the
	// tiebreak so the head is always the latest entry.
	FindTransactionsByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.CustodyTransaction, error)
}
