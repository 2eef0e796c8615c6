// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"webmarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	PurchaseHandler *handler.PurchaseHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	purchaseHandler *handler.PurchaseHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		purchaseHandler: params.PurchaseHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.ListProducts)
		catalogGroup.POST("", r.catalogHandler.CreateProduct)
		catalogGroup.GET("/:id", r.catalogHandler.GetProduct)
		catalogGroup.GET("/:id/qr", r.catalogHandler.GetProductQR)
		catalogGroup.GET("/:id/status", r.catalogHandler.GetProductStatus)
		catalogGroup.POST("/:id/choose", r.catalogHandler.ChooseProduct)
		catalogGroup.POST("/:id/buy", r.purchaseHandler.BuyProduct)
	}
}
