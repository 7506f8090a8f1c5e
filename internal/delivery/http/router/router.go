// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProjectHandler *handler.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	projectHandler *handler.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		projectHandler: params.ProjectHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/test", handler.HealthCheck)

	// Auth routes: the only endpoints that accept unauthenticated requests
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// The current user's profile requires a verified token
	meGroup := api.Group("/auth")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/me", r.authHandler.Profile)
	}

	// Project routes all require authentication
	projectGroup := api.Group("/projects")
	projectGroup.Use(r.authMiddleware.Authenticate)
	{
		projectGroup.GET("", r.projectHandler.List)
		projectGroup.GET("/:id", r.projectHandler.Get)
		projectGroup.POST("", r.projectHandler.Create)
		projectGroup.PUT("/:id", r.projectHandler.Update)
		projectGroup.DELETE("/:id", r.projectHandler.Delete)
	}
}
