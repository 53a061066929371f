package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"custodia/config"
	"custodia/internal/custody"
	deliverycontext "custodia/internal/delivery/context"
	"custodia/internal/domain/entity"
	"custodia/internal/domain/repository"
	"custodia/internal/domain/service"
	"custodia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// overdueScanService implements the OverdueScanUsecase interface.
type overdueScanService struct {
	assetRepo        repository.AssetRepository
	transactionRepo  repository.TransactionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	emailSender      service.EmailSender
	pushSender       service.PushSender
	location         *time.Location
	logger           *slog.Logger
	now              func() time.Time
}

// OverdueScanServiceParams holds dependencies for overdueScanService, injected by Fx.
type OverdueScanServiceParams struct {
	fx.In

	AssetRepo        repository.AssetRepository
	TransactionRepo  repository.TransactionRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	EmailSender      service.EmailSender
	PushSender       service.PushSender `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewOverdueScanService is the constructor for overdueScanService.
func NewOverdueScanService(params OverdueScanServiceParams) usecase.OverdueScanUsecase {
	location := time.Local
	if params.Config != nil && params.Config.Notifications != nil && params.Config.Notifications.Timezone != "" {
		loc, err := time.LoadLocation(params.Config.Notifications.Timezone)
		if err != nil {
			params.Logger.Warn("invalid notifications timezone, falling back to local",
				slog.String("timezone", params.Config.Notifications.Timezone),
				slog.Any("error", err))
		} else {
			location = loc
		}
	}

	return &overdueScanService{
		assetRepo:        params.AssetRepo,
		transactionRepo:  params.TransactionRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		emailSender:      params.EmailSender,
		pushSender:       params.PushSender,
		location:         location,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *overdueScanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scan walks every overdue asset and dispatches at most one reminder per
// (asset, holder) per calendar day. Per-asset failures are recorded and the
// scan moves on; only a failure to list overdue assets aborts the run.
func (srv *overdueScanService) Scan(ctx context.Context) (*usecase.ScanResult, error) {
	now := srv.now().In(srv.location)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, srv.location)
	dayEnd := dayStart.Add(24 * time.Hour)

	assets, err := srv.assetRepo.FindOverdueAssets(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &usecase.ScanResult{Details: make([]usecase.ScanDetail, 0, len(assets))}

	for _, asset := range assets {
		detail, processed := srv.processAsset(ctx, asset, now, dayStart, dayEnd)
		if detail == nil {
			continue
		}

		result.Details = append(result.Details, *detail)
		if processed {
			result.Processed++
		}
	}

	srv.log(ctx).Info("overdue scan completed",
		slog.Int("overdue_assets", len(assets)),
		slog.Int("processed", result.Processed))

	return result, nil
}

// processAsset handles one overdue asset. The second return value reports
// whether a notification attempt was recorded (as opposed to a dedup skip).
func (srv *overdueScanService) processAsset(ctx context.Context, asset *entity.Asset, now, dayStart, dayEnd time.Time) (*usecase.ScanDetail, bool) {
	history, err := srv.transactionRepo.FindTransactionsByAsset(ctx, asset.ID)
	if err != nil {
		srv.log(ctx).Error("failed to load custody history",
			slog.String("asset_code", asset.Code),
			slog.Any("error", err))

		return nil, false
	}

	current := custody.Resolve(history)
	if !current.HasHolder() {
		// Status says IN_USE but the ledger has no active checkout. The
		// cached status has drifted; never guess a recipient.
		srv.log(ctx).Warn("asset marked in use but ledger has no active checkout, skipping",
			slog.String("asset_code", asset.Code))

		return nil, false
	}

	holder, err := srv.userRepo.FindUserByID(ctx, *current.HolderID)
	if err != nil {
		srv.log(ctx).Warn("cannot resolve holder for overdue asset, skipping",
			slog.String("asset_code", asset.Code),
			slog.String("user_id", current.HolderID.String()),
			slog.Any("error", err))

		return nil, false
	}

	exists, err := srv.notificationRepo.HasNotificationInWindow(ctx, asset.ID, holder.ID, dayStart, dayEnd)
	if err != nil {
		srv.log(ctx).Error("dedup lookup failed, skipping asset",
			slog.String("asset_code", asset.Code),
			slog.Any("error", err))

		return nil, false
	}
	if exists {
		return &usecase.ScanDetail{AssetCode: asset.Code, UserEmail: holder.Email, Status: usecase.ScanStatusSkipped}, false
	}

	status, message := srv.dispatch(ctx, asset, holder)

	logRow := &entity.NotificationLog{
		Type:     entity.NotificationTypeEmailPush,
		Status:   status,
		Message:  message,
		SentAt:   now,
		UserID:   holder.ID,
		AssetID:  asset.ID,
		DedupKey: entity.NotificationDedupKey(asset.ID, holder.ID, now),
	}
	if err := srv.notificationRepo.CreateNotificationLog(ctx, logRow); err != nil {
		if errors.Is(err, repository.ErrDuplicateNotification) {
			// A concurrent scan won the race for today's window.
			return &usecase.ScanDetail{AssetCode: asset.Code, UserEmail: holder.Email, Status: usecase.ScanStatusSkipped}, false
		}

		srv.log(ctx).Error("failed to record notification log",
			slog.String("asset_code", asset.Code),
			slog.Any("error", err))
	}

	detailStatus := usecase.ScanStatusFailed
	if status == entity.NotificationStatusSuccess {
		detailStatus = usecase.ScanStatusSuccess
	}

	return &usecase.ScanDetail{AssetCode: asset.Code, UserEmail: holder.Email, Status: detailStatus}, true
}

// dispatch fans the reminder out to email and push. The attempt succeeds when
// at least one channel delivers. An absent FCM token skips the push channel
// without counting as a failure; a missing email address fails the attempt
// outright since email is the primary channel.
func (srv *overdueScanService) dispatch(ctx context.Context, asset *entity.Asset, holder *entity.User) (entity.NotificationStatus, string) {
	if holder.Email == "" {
		srv.log(ctx).Warn("holder has no email address",
			slog.String("asset_code", asset.Code),
			slog.String("user_id", holder.ID.String()))

		return entity.NotificationStatusFailed, "holder has no email address"
	}

	var failures []string

	emailOK := true
	if err := srv.emailSender.SendEmail(ctx, buildOverdueEmail(asset, holder)); err != nil {
		emailOK = false
		failures = append(failures, fmt.Sprintf("email: %v", err))
		srv.log(ctx).Warn("overdue email delivery failed",
			slog.String("asset_code", asset.Code),
			slog.String("email", holder.Email),
			slog.Any("error", err))
	}

	pushOK := false
	if srv.pushSender != nil && holder.HasPushDevice() {
		title, body := buildOverduePush(asset)
		err := srv.pushSender.SendPush(ctx, holder.FCMToken, title, body, map[string]string{
			"asset_id":   asset.ID.String(),
			"asset_code": asset.Code,
		})
		if err != nil {
			failures = append(failures, fmt.Sprintf("push: %v", err))
			srv.log(ctx).Warn("overdue push delivery failed",
				slog.String("asset_code", asset.Code),
				slog.Any("error", err))
		} else {
			pushOK = true
		}
	}

	if emailOK || pushOK {
		message := fmt.Sprintf("overdue reminder for asset %s", asset.Code)
		// Keep the failed channel on record even when the attempt succeeded.
		if len(failures) > 0 {
			message = fmt.Sprintf("%s (partial: %s)", message, strings.Join(failures, "; "))
		}

		return entity.NotificationStatusSuccess, message
	}

	return entity.NotificationStatusFailed, strings.Join(failures, "; ")
}

func buildOverdueEmail(asset *entity.Asset, holder *entity.User) *service.Email {
	due := "unknown"
	if asset.ReturnDate != nil {
		due = asset.ReturnDate.Format("2006-01-02")
	}

	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>The asset <strong>%s</strong> (%s) was due back on %s and is still checked out to you. Please return it or contact the asset desk to extend the loan.</p>",
		holder.FullName(), asset.Name, asset.Code, due)

	return &service.Email{
		To:      holder.Email,
		Subject: fmt.Sprintf("Overdue asset reminder: %s", asset.Code),
		HTML:    html,
	}
}

func buildOverduePush(asset *entity.Asset) (title, body string) {
	title = "Overdue asset reminder"
	body = fmt.Sprintf("%s (%s) is overdue. Please return it.", asset.Name, asset.Code)

	return title, body
}
