package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"custodia/config"
	"custodia/internal/delivery"
	"custodia/internal/delivery/http"
	"custodia/internal/delivery/http/middleware"
	"custodia/internal/delivery/http/router/handler"
	"custodia/internal/domain/service"
	logs "custodia/internal/infra/log"
	"custodia/internal/infra/mail"
	"custodia/internal/infra/notification"
	"custodia/internal/infra/persistence/postgres"
	"custodia/internal/infra/pubsub"
	"custodia/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAssetRepository,
			postgres.NewTransactionRepository,
			postgres.NewNotificationRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newEmailSender,
			newFirebaseService,
			pubsub.NewEventPublisher,
		),
	)
}

// newEmailSender creates an SMTP sender with dependency injection
func newEmailSender(cfg *config.Config) (service.EmailSender, error) {
	if cfg.SMTP == nil {
		return nil, fmt.Errorf("smtp configuration is required")
	}

	return mail.NewSMTPSender(cfg.SMTP), nil
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustodyService,
			impl.NewOverdueScanService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustodyHandler,
			handler.NewScanHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
