// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"custodia/config"
	deliverycontext "custodia/internal/delivery/context"
	"custodia/internal/domain/constants"
	"custodia/internal/domain/service"
	"custodia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ScanPushHandler runs the overdue scan when the scheduler's trigger message
// arrives on the push endpoint.
type ScanPushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	overdueUC      usecase.OverdueScanUsecase
}

// ScanPushHandlerParams holds dependencies for the ScanPushHandler
type ScanPushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	OverdueUC usecase.OverdueScanUsecase
}

// NewScanPushHandler creates a new Pub/Sub push handler
func NewScanPushHandler(params ScanPushHandlerParams) *ScanPushHandler {
	// Only Google-delivered pushes carry a verifiable OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &ScanPushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		overdueUC:      params.OverdueUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *ScanPushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ScanTriggerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse scan trigger event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing overdue scan trigger",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Time("triggered_at", event.TriggeredAt),
	)

	result, err := h.overdueUC.Scan(ctx)
	if err != nil {
		reqLogger.Error("[Worker] Overdue scan failed", slog.Any("error", err))

		// 503 makes Pub/Sub redeliver the trigger. Per-asset failures are
		// handled inside the scan and never reach this point.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Overdue scan completed",
		slog.Int("processed", result.Processed),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *ScanPushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ScanTriggerEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token attached by Google Pub/Sub push.
func verifyPubSubToken(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return errors.New("malformed Authorization header")
	}

	if _, err := idtoken.Validate(r.Context(), token, ""); err != nil {
		return errors.Wrap(err, "failed to validate Pub/Sub token")
	}

	return nil
}
