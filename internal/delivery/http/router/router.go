// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/riaj03/savyo/internal/delivery/http/middleware"
	"github.com/riaj03/savyo/internal/delivery/http/router/handler"
	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	StoreHandler    *handler.StoreHandler
	DealHandler     *handler.DealHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	storeHandler    *handler.StoreHandler
	dealHandler     *handler.DealHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		storeHandler:    params.StoreHandler,
		dealHandler:     params.DealHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Category routes: public reads, admin-only mutations.
	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		}
		categoryGroup.POST("", r.categoryHandler.Create, adminOnly...)
		categoryGroup.PUT("/:id", r.categoryHandler.Update, adminOnly...)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, adminOnly...)
	}

	// Store routes: public reads, admin-only mutations.
	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.GET("/:id", r.storeHandler.Get)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		}
		storeGroup.POST("", r.storeHandler.Create, adminOnly...)
		storeGroup.PUT("/:id", r.storeHandler.Update, adminOnly...)
		storeGroup.DELETE("/:id", r.storeHandler.Delete, adminOnly...)
	}

	// Deal routes: public reads, any authenticated account can submit;
	// the owner-or-admin rule on mutations is enforced in the use case.
	dealGroup := api.Group("/deals")
	{
		dealGroup.GET("", r.dealHandler.List)
		dealGroup.GET("/:id", r.dealHandler.Get)
		dealGroup.GET("/:id/qrcode", r.dealHandler.QRCode)

		dealGroup.POST("", r.dealHandler.Create, r.authMiddleware.Authenticate)
		dealGroup.PUT("/:id", r.dealHandler.Update, r.authMiddleware.Authenticate)
		dealGroup.DELETE("/:id", r.dealHandler.Delete, r.authMiddleware.Authenticate)
	}
}
