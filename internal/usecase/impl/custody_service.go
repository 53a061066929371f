// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"custodia/internal/custody"
	deliverycontext "custodia/internal/delivery/context"
	"custodia/internal/domain/entity"
	domainerrors "custodia/internal/domain/errors"
	"custodia/internal/domain/repository"
	"custodia/internal/domain/service"
	"custodia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// custodyService implements the CustodyUsecase interface.
type custodyService struct {
	txManager       repository.TransactionManager
	assetRepo       repository.AssetRepository
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// CustodyServiceParams holds dependencies for custodyService, injected by Fx.
type CustodyServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AssetRepo       repository.AssetRepository
	TransactionRepo repository.TransactionRepository
	UserRepo        repository.UserRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewCustodyService is the constructor for custodyService.
func NewCustodyService(params CustodyServiceParams) usecase.CustodyUsecase {
	return &custodyService{
		txManager:       params.TxManager,
		assetRepo:       params.AssetRepo,
		transactionRepo: params.TransactionRepo,
		userRepo:        params.UserRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *custodyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckOut hands an asset to a user. The precondition is evaluated against the
// transaction ledger inside the same database transaction that appends the new
// row, so two racing checkouts cannot both succeed.
func (srv *custodyService) CheckOut(ctx context.Context, input *usecase.CheckOutInput) (*entity.CustodyTransaction, error) {
	if input.AssetID == uuid.Nil {
		return nil, domainerrors.ErrAssetRequired
	}
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user is required")
	}
	if input.ReturnDate.IsZero() {
		return nil, domainerrors.ErrReturnDateRequired
	}

	holder, err := srv.userRepo.FindUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	var (
		asset   *entity.Asset
		created *entity.CustodyTransaction
	)

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var txErr error

		asset, txErr = factory.AssetRepo().FindAssetByID(ctx, input.AssetID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrAssetNotFound) {
				return domainerrors.ErrAssetNotFound
			}

			return txErr
		}

		history, txErr := factory.TransactionRepo().FindTransactionsByAsset(ctx, asset.ID)
		if txErr != nil {
			return txErr
		}

		// Custody is derived from the ledger, never from the cached status.
		if custody.Resolve(history).HasHolder() {
			return domainerrors.ErrAssetAlreadyCheckedOut
		}
		if asset.Status != entity.AssetStatusAvailable {
			return domainerrors.ConflictForStatus(asset.Status.String())
		}

		created = &entity.CustodyTransaction{
			ID:      uuid.New(),
			Action:  entity.ActionCheckOut,
			Date:    date,
			Notes:   input.Notes,
			AssetID: asset.ID,
			UserID:  holder.ID,
		}
		if txErr = factory.TransactionRepo().CreateTransaction(ctx, created); txErr != nil {
			return txErr
		}

		// The status-guarded write is the backstop for the ledger read above:
		// when a concurrent checkout claimed the asset between our read and
		// this update, zero rows match and the whole transaction, including
		// the ledger insert, rolls back.
		if txErr = factory.AssetRepo().MarkAssetCheckedOut(ctx, asset.ID, input.ReturnDate); txErr != nil {
			if errors.Is(txErr, repository.ErrAssetNotAvailable) {
				return domainerrors.ErrAssetAlreadyCheckedOut
			}

			return txErr
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.EventTypeCheckedOut, asset, created, &input.ReturnDate)

	return created, nil
}

// CheckIn records the return of an asset. The acting user is recorded on the
// CHECK_IN row even when it differs from the resolved holder.
func (srv *custodyService) CheckIn(ctx context.Context, input *usecase.CheckInInput) (*entity.CustodyTransaction, error) {
	if input.AssetID == uuid.Nil {
		return nil, domainerrors.ErrAssetRequired
	}
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user is required")
	}
	if input.Status == entity.AssetStatusInUse {
		return nil, domainerrors.ErrCheckinStatusInUse
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown asset status")
	}

	if _, err := srv.userRepo.FindUserByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	var (
		asset   *entity.Asset
		created *entity.CustodyTransaction
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var txErr error

		asset, txErr = factory.AssetRepo().FindAssetByID(ctx, input.AssetID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrAssetNotFound) {
				return domainerrors.ErrAssetNotFound
			}

			return txErr
		}

		history, txErr := factory.TransactionRepo().FindTransactionsByAsset(ctx, asset.ID)
		if txErr != nil {
			return txErr
		}

		if !custody.Resolve(history).HasHolder() {
			return domainerrors.ErrAssetNotCheckedOut
		}

		created = &entity.CustodyTransaction{
			ID:      uuid.New(),
			Action:  entity.ActionCheckIn,
			Date:    date,
			Notes:   input.Notes,
			AssetID: asset.ID,
			UserID:  input.UserID,
		}
		if txErr = factory.TransactionRepo().CreateTransaction(ctx, created); txErr != nil {
			return txErr
		}

		return factory.AssetRepo().UpdateAssetCustody(ctx, asset.ID, input.Status, nil)
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.EventTypeCheckedIn, asset, created, nil)

	return created, nil
}

// GetCustody resolves who holds the asset right now, purely from the ledger.
func (srv *custodyService) GetCustody(ctx context.Context, assetID uuid.UUID) (*usecase.CustodyState, error) {
	if assetID == uuid.Nil {
		return nil, domainerrors.ErrAssetRequired
	}

	asset, err := srv.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, err
	}

	history, err := srv.transactionRepo.FindTransactionsByAsset(ctx, asset.ID)
	if err != nil {
		return nil, err
	}

	state := &usecase.CustodyState{Asset: asset}

	current := custody.Resolve(history)
	if !current.HasHolder() {
		return state, nil
	}

	holder, err := srv.userRepo.FindUserByID(ctx, *current.HolderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Ledger references a user row that is gone. Surface the custody
			// without holder details rather than failing the read.
			srv.log(ctx).Warn("custody holder missing from users table",
				slog.String("asset_id", asset.ID.String()),
				slog.String("user_id", current.HolderID.String()))

			return state, nil
		}

		return nil, err
	}

	since := current.Since
	state.Holder = holder
	state.HeldSince = &since
	state.IsOverdue = custody.IsOverdue(current, asset.ReturnDate, time.Now())

	return state, nil
}

// publishEvent emits a custody event after the transaction has committed.
// Delivery is best effort; failures are logged and never fail the operation.
func (srv *custodyService) publishEvent(ctx context.Context, eventType string, asset *entity.Asset, tx *entity.CustodyTransaction, returnDate *time.Time) {
	if srv.publisher == nil {
		return
	}

	event := &service.CustodyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		AssetID:    asset.ID.String(),
		AssetCode:  asset.Code,
		UserID:     tx.UserID.String(),
		Date:       tx.Date,
		ReturnDate: returnDate,
	}

	if err := srv.publisher.PublishCustodyEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish custody event",
			slog.String("event_type", eventType),
			slog.String("asset_id", asset.ID.String()),
			slog.Any("error", err))
	}
}
