// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"custodia/internal/domain/entity"
	domainerrors "custodia/internal/domain/errors"
	"custodia/internal/domain/repository"
	"custodia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRepository implements the repository.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// FindAssetByID retrieves an asset by its unique ID.
func (repo *assetRepository) FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return toAssetDomain(&assetM), nil
}

// FindAssetByCode retrieves an asset by its unique business code.
func (repo *assetRepository) FindAssetByCode(ctx context.Context, code string) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by code")
	}

	return toAssetDomain(&assetM), nil
}

// FindOverdueAssets retrieves assets that are IN_USE with a return date strictly before asOf.
func (repo *assetRepository) FindOverdueAssets(ctx context.Context, asOf time.Time) ([]*entity.Asset, error) {
	var assetModels []*model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.AssetStatusInUse.String()).
		Where("return_date IS NOT NULL AND return_date < ?", asOf).
		Order("return_date ASC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue assets")
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toAssetDomain(assetM))
	}

	return assets, nil
}

// UpdateAssetCustody updates the denormalized custody fields of an asset.
func (repo *assetRepository) UpdateAssetCustody(ctx context.Context, id uuid.UUID, status entity.AssetStatus, returnDate *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssetModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status.String(),
			"return_date": returnDate,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update asset custody fields")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// MarkAssetCheckedOut claims an AVAILABLE asset for a new checkout. The status
// guard in the WHERE clause is what rejects the second of two racing
// checkouts: the loser's update matches zero rows and its surrounding
// transaction rolls back the ledger insert.
func (repo *assetRepository) MarkAssetCheckedOut(ctx context.Context, id uuid.UUID, returnDate time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssetModel{}).
		Where("id = ? AND status = ?", id, entity.AssetStatusAvailable.String()).
		Updates(map[string]any{
			"status":      entity.AssetStatusInUse.String(),
			"return_date": returnDate,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark asset checked out")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetNotAvailable
	}

	return nil
}

// --- Mapper Functions ---

// toAssetDomain converts a GORM AssetModel to a domain Asset entity.
func toAssetDomain(data *model.AssetModel) *entity.Asset {
	if data == nil {
		return nil
	}

	return &entity.Asset{
		ID:         data.ID,
		Code:       data.Code,
		Name:       data.Name,
		TypeID:     data.TypeID,
		Status:     entity.AssetStatus(data.Status),
		ReturnDate: data.ReturnDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
