package handler

import (
	"log/slog"
	"net/http"

	"custodia/internal/delivery/http/response"
	"custodia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	OverdueUC usecase.OverdueScanUsecase
	Logger    *slog.Logger
}

// ScanHandler exposes the overdue scan as an API operation for manual runs.
type ScanHandler struct {
	overdueUC usecase.OverdueScanUsecase
	logger    *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		overdueUC: params.OverdueUC,
		logger:    params.Logger,
	}
}

// RunScan handles POST /jobs/overdue-scan
func (h *ScanHandler) RunScan(c echo.Context) error {
	result, err := h.overdueUC.Scan(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Overdue scan completed")
}
