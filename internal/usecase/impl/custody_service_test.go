package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"custodia/internal/domain/entity"
	domainerrors "custodia/internal/domain/errors"
	"custodia/internal/domain/repository"
	mockRepo "custodia/internal/mocks/repository"
	mockSvc "custodia/internal/mocks/service"
	"custodia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// custodyServiceFixtures holds all test dependencies for custody service tests.
type custodyServiceFixtures struct {
	service         usecase.CustodyUsecase
	txManager       *mockRepo.MockTransactionManager
	assetRepo       *mockRepo.MockAssetRepository
	transactionRepo *mockRepo.MockTransactionRepository
	userRepo        *mockRepo.MockUserRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestCustodyService(t *testing.T) custodyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCustodyService(CustodyServiceParams{
		TxManager:       txManager,
		AssetRepo:       assetRepo,
		TransactionRepo: transactionRepo,
		UserRepo:        userRepo,
		Publisher:       publisher,
		Logger:          logger,
	})

	return custodyServiceFixtures{
		service:         service,
		txManager:       txManager,
		assetRepo:       assetRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		publisher:       publisher,
	}
}

func availableAsset() *entity.Asset {
	return &entity.Asset{
		ID:     uuid.New(),
		Code:   "LT-0042",
		Name:   "ThinkPad X1",
		Status: entity.AssetStatusAvailable,
	}
}

func testHolder() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "holder@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
	}
}

func checkoutFor(asset *entity.Asset, userID uuid.UUID, date time.Time) *entity.CustodyTransaction {
	return &entity.CustodyTransaction{
		ID:        uuid.New(),
		Action:    entity.ActionCheckOut,
		Date:      date,
		AssetID:   asset.ID,
		UserID:    userID,
		CreatedAt: date,
	}
}

func TestCustodyService_CheckOut_Success(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	holder := testHolder()
	returnDate := time.Now().Add(7 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{}, nil)
			mockTxRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.CustodyTransaction")).
				Return(nil)
			mockAssetRepo.EXPECT().
				MarkAssetCheckedOut(ctx, asset.ID, returnDate).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishCustodyEvent(ctx, mock.AnythingOfType("*service.CustodyEvent")).
		Return(nil)

	created, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    asset.ID,
		UserID:     holder.ID,
		ReturnDate: returnDate,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.ActionCheckOut, created.Action)
	assert.Equal(t, asset.ID, created.AssetID)
	assert.Equal(t, holder.ID, created.UserID)
}

func TestCustodyService_CheckOut_AlreadyCheckedOut(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	asset.Status = entity.AssetStatusInUse
	holder := testHolder()
	otherUser := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			// Ledger shows an active checkout by someone else. No new row may
			// be appended.
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{checkoutFor(asset, otherUser, time.Now().Add(-48*time.Hour))}, nil)

			return fn(mockFactory)
		})

	created, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    asset.ID,
		UserID:     holder.ID,
		ReturnDate: time.Now().Add(7 * 24 * time.Hour),
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrAssetAlreadyCheckedOut)
}

func TestCustodyService_CheckOut_MaintenanceConflict(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	asset.Status = entity.AssetStatusMaintenance
	holder := testHolder()

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    asset.ID,
		UserID:     holder.ID,
		ReturnDate: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domainerrors.ErrAssetInMaintenance)
}

func TestCustodyService_CheckOut_MissingReturnDate(t *testing.T) {
	fx := createTestCustodyService(t)

	_, err := fx.service.CheckOut(context.Background(), &usecase.CheckOutInput{
		AssetID: uuid.New(),
		UserID:  uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrReturnDateRequired)
}

func TestCustodyService_CheckOut_ConcurrentClaimRejected(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	holder := testHolder()
	returnDate := time.Now().Add(7 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			// Both writers saw a holder-free ledger and an AVAILABLE asset,
			// but the other one committed first. The status-guarded update
			// matches zero rows for the loser.
			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{}, nil)
			mockTxRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.CustodyTransaction")).
				Return(nil)
			mockAssetRepo.EXPECT().
				MarkAssetCheckedOut(ctx, asset.ID, returnDate).
				Return(repository.ErrAssetNotAvailable)

			return fn(mockFactory)
		})

	created, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    asset.ID,
		UserID:     holder.ID,
		ReturnDate: returnDate,
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrAssetAlreadyCheckedOut)
}

func TestCustodyService_CheckOut_UserNotFound(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    uuid.New(),
		UserID:     userID,
		ReturnDate: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCustodyService_CheckOut_WrappedUserNotFound(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Sentinel mapping must survive repository-layer wrapping.
	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, errors.Wrap(repository.ErrUserNotFound, "failed to find user by ID"))

	_, err := fx.service.CheckOut(ctx, &usecase.CheckOutInput{
		AssetID:    uuid.New(),
		UserID:     userID,
		ReturnDate: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCustodyService_CheckIn_Success(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	asset.Status = entity.AssetStatusInUse
	holder := testHolder()

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{checkoutFor(asset, holder.ID, time.Now().Add(-72*time.Hour))}, nil)
			mockTxRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.CustodyTransaction")).
				Return(nil)
			// Return clears the due date along with the status change.
			mockAssetRepo.EXPECT().
				UpdateAssetCustody(ctx, asset.ID, entity.AssetStatusAvailable, (*time.Time)(nil)).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishCustodyEvent(ctx, mock.AnythingOfType("*service.CustodyEvent")).
		Return(nil)

	created, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		AssetID: asset.ID,
		UserID:  holder.ID,
		Status:  entity.AssetStatusAvailable,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.ActionCheckIn, created.Action)
}

func TestCustodyService_CheckIn_StatusInUseRejected(t *testing.T) {
	fx := createTestCustodyService(t)

	_, err := fx.service.CheckIn(context.Background(), &usecase.CheckInInput{
		AssetID: uuid.New(),
		UserID:  uuid.New(),
		Status:  entity.AssetStatusInUse,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCheckinStatusInUse)
}

func TestCustodyService_CheckIn_NotCheckedOut(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	holder := testHolder()

	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		AssetID: asset.ID,
		UserID:  holder.ID,
		Status:  entity.AssetStatusAvailable,
	})

	assert.ErrorIs(t, err, domainerrors.ErrAssetNotCheckedOut)
}

func TestCustodyService_CheckIn_ActingUserDiffersFromHolder(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	asset.Status = entity.AssetStatusInUse
	holderID := uuid.New()
	actingUser := testHolder()

	fx.userRepo.EXPECT().FindUserByID(ctx, actingUser.ID).Return(actingUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssetRepo := mockRepo.NewMockAssetRepository(t)
			mockTxRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().AssetRepo().Return(mockAssetRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxRepo)

			mockAssetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
			mockTxRepo.EXPECT().
				FindTransactionsByAsset(ctx, asset.ID).
				Return([]*entity.CustodyTransaction{checkoutFor(asset, holderID, time.Now().Add(-24*time.Hour))}, nil)
			mockTxRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.CustodyTransaction")).
				Run(func(ctx context.Context, transaction *entity.CustodyTransaction) {
					// The row records who performed the return, not the holder.
					assert.Equal(t, actingUser.ID, transaction.UserID)
				}).
				Return(nil)
			mockAssetRepo.EXPECT().
				UpdateAssetCustody(ctx, asset.ID, entity.AssetStatusMaintenance, (*time.Time)(nil)).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishCustodyEvent(ctx, mock.AnythingOfType("*service.CustodyEvent")).
		Return(nil)

	_, err := fx.service.CheckIn(ctx, &usecase.CheckInInput{
		AssetID: asset.ID,
		UserID:  actingUser.ID,
		Status:  entity.AssetStatusMaintenance,
	})

	require.NoError(t, err)
}

func TestCustodyService_GetCustody_WithHolder(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()
	asset.Status = entity.AssetStatusInUse
	pastDue := time.Now().Add(-24 * time.Hour)
	asset.ReturnDate = &pastDue
	holder := testHolder()
	since := time.Now().Add(-96 * time.Hour)

	fx.assetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return([]*entity.CustodyTransaction{checkoutFor(asset, holder.ID, since)}, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	state, err := fx.service.GetCustody(ctx, asset.ID)

	require.NoError(t, err)
	require.NotNil(t, state.Holder)
	assert.Equal(t, holder.ID, state.Holder.ID)
	require.NotNil(t, state.HeldSince)
	assert.True(t, state.HeldSince.Equal(since))
	assert.True(t, state.IsOverdue)
}

func TestCustodyService_GetCustody_AtRest(t *testing.T) {
	fx := createTestCustodyService(t)

	ctx := context.Background()
	asset := availableAsset()

	fx.assetRepo.EXPECT().FindAssetByID(ctx, asset.ID).Return(asset, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return([]*entity.CustodyTransaction{}, nil)

	state, err := fx.service.GetCustody(ctx, asset.ID)

	require.NoError(t, err)
	assert.Nil(t, state.Holder)
	assert.Nil(t, state.HeldSince)
	assert.False(t, state.IsOverdue)
}
