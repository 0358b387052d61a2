// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"bookrack/internal/delivery/http/middleware"
	"bookrack/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The path
// layout mirrors the public bookshop surface: anonymous catalog reads at the
// root, login and the token-gated review mutations under /customer.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public routes: registration and catalog reads
	e.POST("/register", r.authHandler.Register)
	e.GET("/", r.catalogHandler.List)
	e.GET("/isbn/:isbn", r.catalogHandler.GetByISBN)
	e.GET("/author/:author", r.catalogHandler.GetByAuthor)
	e.GET("/title/:title", r.catalogHandler.GetByTitle)
	e.GET("/review/:isbn", r.catalogHandler.GetReviews)

	// Customer routes: login is open, review mutations sit behind the
	// session gate.
	customerGroup := e.Group("/customer")
	{
		customerGroup.POST("/login", r.authHandler.Login)
	}

	authGroup := customerGroup.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.PUT("/review/:isbn", r.reviewHandler.Upsert)
		authGroup.DELETE("/review/:isbn", r.reviewHandler.Delete)
	}
}
