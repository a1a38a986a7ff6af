// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	EventHandler   *handler.EventHandler
	ProjectHandler *handler.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	eventHandler   *handler.EventHandler
	projectHandler *handler.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		eventHandler:   params.EventHandler,
		projectHandler: params.ProjectHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.authHandler.ResetPassword)
		authGroup.GET("/activate/:token", r.authHandler.Activate)

		// Routes that require a valid access token.
		authGroup.DELETE("/remove", r.authHandler.Remove, r.authMiddleware.Authenticate)
		authGroup.POST("/api-key", r.authHandler.IssueAPIKey, r.authMiddleware.Authenticate)
	}

	eventGroup := v1.Group("/events")
	{
		eventGroup.GET("/ping", r.eventHandler.Ping)
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/project/:project_id", r.eventHandler.ListByProject)
		eventGroup.GET("/:id", r.eventHandler.GetByID)
		eventGroup.POST("", r.eventHandler.Create)
	}

	projectGroup := v1.Group("/projects")
	{
		projectGroup.GET("", r.projectHandler.List)
		projectGroup.GET("/:id", r.projectHandler.GetByID)
		projectGroup.POST("", r.projectHandler.Create)
		projectGroup.PUT("/:id", r.projectHandler.Update)
		projectGroup.DELETE("/:id", r.projectHandler.Delete)
	}
}
