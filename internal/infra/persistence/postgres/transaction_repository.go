package postgres

import (
	"context"

	"custodia/internal/domain/entity"
	domainerrors "custodia/internal/domain/errors"
	"custodia/internal/domain/repository"
	"custodia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements the repository.TransactionRepository
// interface for the append-only custody ledger.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateTransaction appends one custody event to the ledger.
func (repo *transactionRepository) CreateTransaction(ctx context.Context, transaction *entity.CustodyTransaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("invalid asset or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("missing required transaction information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append custody transaction")
	}

	// Update the entity with generated values
	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt

	return nil
}

// FindTransactionsByAsset retrieves an asset's full ledger ordered by effective
// date descending with insertion order as the tiebreak.
func (repo *transactionRepository) FindTransactionsByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.CustodyTransaction, error) {
	var transactionModels []*model.CustodyTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("date DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by asset")
	}

	transactions := make([]*entity.CustodyTransaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM CustodyTransactionModel to a domain CustodyTransaction entity.
func toTransactionDomain(data *model.CustodyTransactionModel) *entity.CustodyTransaction {
	if data == nil {
		return nil
	}

	return &entity.CustodyTransaction{
		ID:        data.ID,
		Action:    entity.TransactionAction(data.Action),
		Date:      data.Date,
		Notes:     data.Notes,
		AssetID:   data.AssetID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

// fromTransactionDomain converts a domain CustodyTransaction entity to a GORM CustodyTransactionModel.
func fromTransactionDomain(transaction *entity.CustodyTransaction) *model.CustodyTransactionModel {
	if transaction == nil {
		return nil
	}

	return &model.CustodyTransactionModel{
		ID:        transaction.ID,
		Action:    transaction.Action.String(),
		Date:      transaction.Date,
		Notes:     transaction.Notes,
		AssetID:   transaction.AssetID,
		UserID:    transaction.UserID,
		CreatedAt: transaction.CreatedAt,
	}
}
