// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parfum/internal/delivery/http/middleware"
	"parfum/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	BrandHandler     *handler.BrandHandler
	PerfumeHandler   *handler.PerfumeHandler
	InventoryHandler *handler.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	brandHandler     *handler.BrandHandler
	perfumeHandler   *handler.PerfumeHandler
	inventoryHandler *handler.InventoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		brandHandler:     params.BrandHandler,
		perfumeHandler:   params.PerfumeHandler,
		inventoryHandler: params.InventoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes are the only public surface besides the health check.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	brandGroup := e.Group("/brands")
	brandGroup.Use(r.authMiddleware.Authenticate)
	{
		brandGroup.GET("", r.brandHandler.List)
		brandGroup.POST("", r.brandHandler.Create)
		brandGroup.GET("/:id", r.brandHandler.Get)
		brandGroup.PUT("/:id", r.brandHandler.Update)
		brandGroup.DELETE("/:id", r.brandHandler.Delete)
	}

	perfumeGroup := e.Group("/perfumes")
	perfumeGroup.Use(r.authMiddleware.Authenticate)
	{
		perfumeGroup.GET("", r.perfumeHandler.List)
		perfumeGroup.POST("", r.perfumeHandler.Create)
		perfumeGroup.GET("/:id", r.perfumeHandler.Get)
		perfumeGroup.PUT("/:id", r.perfumeHandler.Update)
		perfumeGroup.DELETE("/:id", r.perfumeHandler.Delete)
	}

	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	{
		inventoryGroup.GET("", r.inventoryHandler.List)
		// Registered before /:id so "search" is not parsed as an ID.
		inventoryGroup.GET("/search", r.inventoryHandler.Search)
		inventoryGroup.GET("/:id", r.inventoryHandler.Get)
		inventoryGroup.PUT("/:id", r.inventoryHandler.Update)
		inventoryGroup.PUT("/:id/stock", r.inventoryHandler.UpdateStock)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.Delete)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}
}
