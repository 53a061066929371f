// Package handler contains the HTTP handlers for the custody API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"custodia/internal/delivery/http/response"
	"custodia/internal/domain/entity"
	"custodia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustodyHandlerParams holds dependencies for CustodyHandler, injected by Fx.
type CustodyHandlerParams struct {
	fx.In

	CustodyUC usecase.CustodyUsecase
	Logger    *slog.Logger
}

// CustodyHandler holds dependencies for checkout/checkin handlers
type CustodyHandler struct {
	custodyUC usecase.CustodyUsecase
	logger    *slog.Logger
}

// NewCustodyHandler is the constructor for CustodyHandler
func NewCustodyHandler(params CustodyHandlerParams) *CustodyHandler {
	return &CustodyHandler{
		custodyUC: params.CustodyUC,
		logger:    params.Logger,
	}
}

// CheckOutRequest represents the request body for checking out an asset
type CheckOutRequest struct {
	UserID     string     `json:"user_id" validate:"required,uuid"`
	ReturnDate time.Time  `json:"return_date" validate:"required"`
	Date       *time.Time `json:"date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// CheckInRequest represents the request body for returning an asset
type CheckInRequest struct {
	UserID string     `json:"user_id" validate:"required,uuid"`
	Status string     `json:"status" validate:"required,oneof=AVAILABLE MAINTENANCE RETIRED"`
	Date   *time.Time `json:"date,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

// CheckOut handles POST /assets/:id/checkout
func (h *CustodyHandler) CheckOut(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	var req CheckOutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	input := &usecase.CheckOutInput{
		AssetID:    assetID,
		UserID:     userID,
		ReturnDate: req.ReturnDate,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	transaction, err := h.custodyUC.CheckOut(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Asset checked out successfully")
}

// CheckIn handles POST /assets/:id/checkin
func (h *CustodyHandler) CheckIn(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	input := &usecase.CheckInInput{
		AssetID: assetID,
		UserID:  userID,
		Status:  entity.AssetStatus(req.Status),
		Notes:   req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	transaction, err := h.custodyUC.CheckIn(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Asset checked in successfully")
}

// GetCustody handles GET /assets/:id/custody
func (h *CustodyHandler) GetCustody(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	state, err := h.custodyUC.GetCustody(c.Request().Context(), assetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Custody retrieved successfully")
}
