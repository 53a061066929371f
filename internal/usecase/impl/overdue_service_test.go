package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"custodia/config"
	"custodia/internal/domain/entity"
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

// overdueServiceFixtures holds all test dependencies for overdue scan tests.
type overdueServiceFixtures struct {
	service          usecase.OverdueScanUsecase
	assetRepo        *mockRepo.MockAssetRepository
	transactionRepo  *mockRepo.MockTransactionRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	emailSender      *mockSvc.MockEmailSender
	pushSender       *mockSvc.MockPushSender
}

// scanNow is the fixed clock used by the scan tests.
var scanNow = time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

func createTestOverdueScanService(t *testing.T) overdueServiceFixtures {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	emailSender := mockSvc.NewMockEmailSender(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOverdueScanService(OverdueScanServiceParams{
		AssetRepo:        assetRepo,
		TransactionRepo:  transactionRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		EmailSender:      emailSender,
		PushSender:       pushSender,
		Config: &config.Config{
			Notifications: &config.NotificationsConfig{Timezone: "UTC"},
		},
		Logger: logger,
	})
	service.(*overdueScanService).now = func() time.Time { return scanNow }

	return overdueServiceFixtures{
		service:          service,
		assetRepo:        assetRepo,
		transactionRepo:  transactionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailSender:      emailSender,
		pushSender:       pushSender,
	}
}

func overdueAsset(code string) *entity.Asset {
	due := scanNow.Add(-48 * time.Hour)

	return &entity.Asset{
		ID:         uuid.New(),
		Code:       code,
		Name:       "Dell Latitude",
		Status:     entity.AssetStatusInUse,
		ReturnDate: &due,
	}
}

func holderWithPush() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "holder@example.com",
		FirstName: "Sam",
		LastName:  "Okafor",
		FCMToken:  "fcm-token-1",
	}
}

func activeCheckout(asset *entity.Asset, userID uuid.UUID) []*entity.CustodyTransaction {
	return []*entity.CustodyTransaction{{
		ID:      uuid.New(),
		Action:  entity.ActionCheckOut,
		Date:    scanNow.Add(-7 * 24 * time.Hour),
		AssetID: asset.ID,
		UserID:  userID,
	}}
}

func TestOverdueScanService_Scan_BothChannelsSucceed(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0001")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(nil)
	fx.pushSender.EXPECT().
		SendPush(ctx, holder.FCMToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.NotificationStatusSuccess, log.Status)
			assert.Equal(t, entity.NotificationTypeEmailPush, log.Type)
			assert.Equal(t, entity.NotificationDedupKey(asset.ID, holder.ID, scanNow), log.DedupKey)
		}).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, usecase.ScanStatusSuccess, result.Details[0].Status)
	assert.Equal(t, asset.Code, result.Details[0].AssetCode)
	assert.Equal(t, holder.Email, result.Details[0].UserEmail)
}

func TestOverdueScanService_Scan_DedupSkipsSameDay(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0002")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)

	dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, dayStart, dayEnd).
		Return(true, nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, usecase.ScanStatusSkipped, result.Details[0].Status)
}

func TestOverdueScanService_Scan_DuplicateInsertTreatedAsSkip(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0003")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(nil)
	fx.pushSender.EXPECT().
		SendPush(ctx, holder.FCMToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	// A concurrent scan inserted today's row between the window check and the
	// insert. The unique index resolves the race.
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(errors.Wrap(repository.ErrDuplicateNotification, "failed to create notification log"))

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, usecase.ScanStatusSkipped, result.Details[0].Status)
}

func TestOverdueScanService_Scan_AllChannelsFailRecordsFailure(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0004")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(errors.New("smtp: connection refused"))
	fx.pushSender.EXPECT().
		SendPush(ctx, holder.FCMToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("fcm: unregistered token"))
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.NotificationStatusFailed, log.Status)
			assert.Contains(t, log.Message, "email:")
			assert.Contains(t, log.Message, "push:")
		}).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, usecase.ScanStatusFailed, result.Details[0].Status)
}

func TestOverdueScanService_Scan_EmailFailsPushSucceeds(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0005")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(errors.New("smtp: timeout"))
	fx.pushSender.EXPECT().
		SendPush(ctx, holder.FCMToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.NotificationStatusSuccess, log.Status)
			// The failed channel stays on record even though delivery succeeded.
			assert.Contains(t, log.Message, "partial:")
			assert.Contains(t, log.Message, "email: smtp: timeout")
		}).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.ScanStatusSuccess, result.Details[0].Status)
}

func TestOverdueScanService_Scan_NoPushDeviceStillSucceeds(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0006")
	holder := holderWithPush()
	holder.FCMToken = ""

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	// Push is skipped, not failed, when the holder has no registered device.
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(nil)
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.NotificationStatusSuccess, log.Status)
		}).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestOverdueScanService_Scan_MissingEmailRecordsFailure(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0007")
	holder := holderWithPush()
	holder.Email = ""

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return(activeCheckout(asset, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, asset.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.NotificationStatusFailed, log.Status)
			assert.Contains(t, log.Message, "no email address")
		}).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, usecase.ScanStatusFailed, result.Details[0].Status)
}

func TestOverdueScanService_Scan_AnomalousAssetSkipped(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	asset := overdueAsset("LT-0008")

	fx.assetRepo.EXPECT().FindOverdueAssets(ctx, scanNow).Return([]*entity.Asset{asset}, nil)
	// Status says IN_USE but the ledger's head is a check-in.
	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, asset.ID).
		Return([]*entity.CustodyTransaction{{
			ID:      uuid.New(),
			Action:  entity.ActionCheckIn,
			Date:    scanNow.Add(-24 * time.Hour),
			AssetID: asset.ID,
			UserID:  uuid.New(),
		}}, nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, result.Details)
}

func TestOverdueScanService_Scan_ContinuesAfterItemFailure(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()
	broken := overdueAsset("LT-0009")
	healthy := overdueAsset("LT-0010")
	holder := holderWithPush()

	fx.assetRepo.EXPECT().
		FindOverdueAssets(ctx, scanNow).
		Return([]*entity.Asset{broken, healthy}, nil)

	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, broken.ID).
		Return(nil, errors.New("connection reset"))

	fx.transactionRepo.EXPECT().
		FindTransactionsByAsset(ctx, healthy.ID).
		Return(activeCheckout(healthy, holder.ID), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, holder.ID).Return(holder, nil)
	fx.notificationRepo.EXPECT().
		HasNotificationInWindow(ctx, healthy.ID, holder.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.emailSender.EXPECT().
		SendEmail(ctx, mock.AnythingOfType("*service.Email")).
		Return(nil)
	fx.pushSender.EXPECT().
		SendPush(ctx, holder.FCMToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.notificationRepo.EXPECT().
		CreateNotificationLog(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	result, err := fx.service.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, healthy.Code, result.Details[0].AssetCode)
}

func TestOverdueScanService_Scan_ListFailureAborts(t *testing.T) {
	fx := createTestOverdueScanService(t)

	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindOverdueAssets(ctx, scanNow).
		Return(nil, errors.New("database unavailable"))

	result, err := fx.service.Scan(ctx)

	require.Error(t, err)
	assert.Nil(t, result)
}
