// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orderguard/internal/delivery/http/middleware"
	"orderguard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	OrderHandler   *handler.OrderHandler
	CartHandler    *handler.CartHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	orderHandler   *handler.OrderHandler
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		orderHandler:   params.OrderHandler,
		cartHandler:    params.CartHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/verify-email", r.accountHandler.VerifyEmail)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	api.GET("/permissions", r.catalogHandler.GetPermissions)

	orders := api.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.POST("", r.orderHandler.CreateOrder)
		orders.GET("/:orderId", r.orderHandler.GetOrder)
		orders.PUT("/:orderId/cancel", r.orderHandler.CancelOrder)
		orders.POST("/:orderId/refund", r.orderHandler.RefundOrder)
		orders.PUT("/:orderId/status", r.orderHandler.ChangeOrderStatus)
		orders.PUT("/:orderId/notes", r.orderHandler.UpdateOrderNotes)
	}
	api.POST("/checkout", r.orderHandler.Checkout)

	cart := api.Group("/cart")
	{
		cart.GET("", r.cartHandler.GetCart)
		cart.DELETE("", r.cartHandler.ClearCart)
		cart.POST("/items", r.cartHandler.AddCartItem)
		cart.PUT("/items/:productId", r.cartHandler.UpdateCartItem)
		cart.DELETE("/items/:productId", r.cartHandler.RemoveCartItem)
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("", r.cartHandler.GetWishlist)
		wishlist.POST("", r.cartHandler.AddWishlistItem)
		wishlist.DELETE("/:productId", r.cartHandler.RemoveWishlistItem)
	}

	api.POST("/coupons/apply", r.catalogHandler.ApplyCoupon)
	api.GET("/products/:productId/quote", r.catalogHandler.GetProductQuote)
	api.POST("/products/:productId/restock", r.catalogHandler.RestockProduct)

	api.PUT("/admin/users/:userId/status", r.accountHandler.SetAccountStatus)
}
