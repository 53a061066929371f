// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"custodia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustodyHandler *handler.CustodyHandler
	ScanHandler    *handler.ScanHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	custodyHandler *handler.CustodyHandler
	scanHandler    *handler.ScanHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		custodyHandler: params.CustodyHandler,
		scanHandler:    params.ScanHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Asset custody routes
	assetGroup := e.Group("/assets")
	{
		assetGroup.POST("/:id/checkout", r.custodyHandler.CheckOut)
		assetGroup.POST("/:id/checkin", r.custodyHandler.CheckIn)
		assetGroup.GET("/:id/custody", r.custodyHandler.GetCustody)
	}

	// Operational jobs
	jobGroup := e.Group("/jobs")
	{
		jobGroup.POST("/overdue-scan", r.scanHandler.RunScan)
	}
}
