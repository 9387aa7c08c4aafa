// Package router contains routing setup for the HTTP delivery.
package router

import (
	"keystone/internal/delivery/http/middleware"
	"keystone/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SessionHandler      *handler.SessionHandler
	VerificationHandler *handler.VerificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	sessionHandler      *handler.SessionHandler
	verificationHandler *handler.VerificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		sessionHandler:      params.SessionHandler,
		verificationHandler: params.VerificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, no token required
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password-reset/request", r.verificationHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.verificationHandler.ResetPassword)
		authGroup.POST("/verify-email/request", r.verificationHandler.RequestEmailVerification)
		authGroup.POST("/verify-email/confirm", r.verificationHandler.VerifyEmail)
	}

	// Routes that require a valid access token
	accountGroup := e.Group("/auth")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.POST("/change-password", r.authHandler.ChangePassword)
	}

	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.List)
		sessionGroup.GET("/:id", r.sessionHandler.Get)
		sessionGroup.DELETE("/:id", r.sessionHandler.Revoke)
		sessionGroup.DELETE("", r.sessionHandler.RevokeAll)
	}
}
