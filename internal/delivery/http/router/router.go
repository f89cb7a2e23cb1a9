// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	ItemHandler       *handler.ItemHandler
	OrderHandler      *handler.OrderHandler
	CourierHandler    *handler.CourierHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	itemHandler       *handler.ItemHandler
	orderHandler      *handler.OrderHandler
	courierHandler    *handler.CourierHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		itemHandler:       params.ItemHandler,
		orderHandler:      params.OrderHandler,
		courierHandler:    params.CourierHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/register/", r.authHandler.Register)
	e.POST("/login/", r.authHandler.Login)
	e.POST("/refresh/", r.authHandler.Refresh)
	e.GET("/confirm/:token/", r.authHandler.Confirm)
	e.POST("/logout/", r.authHandler.Logout)

	// Profile routes require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me/", r.userHandler.GetMe)
		userGroup.PUT("/me/", r.userHandler.UpdateMe)
		userGroup.POST("/change-password/", r.userHandler.ChangePassword)
	}

	// Restaurant catalog: reads are public, mutations require authentication
	e.GET("/restaurants/", r.restaurantHandler.List)
	e.GET("/restaurants/:id/", r.restaurantHandler.Get)
	e.POST("/restaurants/", r.restaurantHandler.Create, r.authMiddleware.Authenticate)
	e.PUT("/restaurants/:id/", r.restaurantHandler.Update, r.authMiddleware.Authenticate)
	e.DELETE("/restaurants/:id/", r.restaurantHandler.Delete, r.authMiddleware.Authenticate)

	// Menu item catalog follows the same split
	e.GET("/items/", r.itemHandler.List)
	e.GET("/items/:id/", r.itemHandler.Get)
	e.POST("/items/", r.itemHandler.Create, r.authMiddleware.Authenticate)
	e.PUT("/items/:id/", r.itemHandler.Update, r.authMiddleware.Authenticate)
	e.DELETE("/items/:id/", r.itemHandler.Delete, r.authMiddleware.Authenticate)

	// Order lifecycle routes require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/", r.orderHandler.List)
		orderGroup.POST("/", r.orderHandler.Create)
		orderGroup.GET("/:id/", r.orderHandler.Get)
		orderGroup.DELETE("/:id/", r.orderHandler.Delete)
		orderGroup.PATCH("/:id/status/", r.orderHandler.UpdateStatus)
		orderGroup.POST("/:id/assignment/", r.courierHandler.Assign)
		orderGroup.GET("/:id/assignment/", r.courierHandler.GetAssignment)
	}

	// Courier position routes require authentication
	courierGroup := e.Group("/couriers")
	courierGroup.Use(r.authMiddleware.Authenticate)
	{
		courierGroup.POST("/me/positions/", r.courierHandler.RecordPosition)
		courierGroup.GET("/:id/positions/", r.courierHandler.ListPositions)
	}
}
