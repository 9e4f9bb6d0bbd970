// Package router contains routing setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.POST("/add", r.catalogHandler.CreateProduct)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.POST("/:id/delete", r.catalogHandler.DeleteProduct)
	}

	categoriesGroup := e.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.POST("/add", r.catalogHandler.CreateCategory)
		categoriesGroup.GET("/:id/products", r.catalogHandler.ListCategoryProducts)
	}

	tagsGroup := e.Group("/tags")
	{
		tagsGroup.GET("", r.catalogHandler.ListTags)
		tagsGroup.GET("/:id/products", r.catalogHandler.ListTagProducts)
	}

	// Cart routes are session-scoped
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.Ensure)
	{
		cartGroup.GET("", r.cartHandler.ViewCart)
		cartGroup.POST("/add/:productId", r.cartHandler.AddToCart)
		cartGroup.POST("/remove/:productId", r.cartHandler.RemoveFromCart)
	}

	// Order routes share the session identity with the cart
	orderGroup := e.Group("/order")
	orderGroup.Use(r.sessionMiddleware.Ensure)
	{
		orderGroup.POST("/create", r.orderHandler.CreateOrder)
		orderGroup.GET("/success/:orderId", r.orderHandler.OrderSuccess)
	}
}
