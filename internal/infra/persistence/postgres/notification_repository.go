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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotificationLog persists one delivery attempt. The unique index on
// dedup_key turns a same-day duplicate into ErrDuplicateNotification, which is
// how two scanner instances racing past the window check get serialized.
func (repo *notificationRepository) CreateNotificationLog(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("invalid asset or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.SentAt = logM.SentAt

	return nil
}

// HasNotificationInWindow reports whether a log row exists for the given asset
// and holder with sent_at inside [start, end).
func (repo *notificationRepository) HasNotificationInWindow(ctx context.Context, assetID, userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationLogModel{}).
		Where("asset_id = ?", assetID).
		Where("user_id = ?", userID).
		Where("sent_at >= ? AND sent_at < ?", start, end).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to query notification window")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(log *entity.NotificationLog) *model.NotificationLogModel {
	if log == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:       log.ID,
		Type:     log.Type,
		Status:   log.Status.String(),
		Message:  log.Message,
		SentAt:   log.SentAt,
		UserID:   log.UserID,
		AssetID:  log.AssetID,
		DedupKey: log.DedupKey,
	}
}
