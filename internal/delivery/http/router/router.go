// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zilptext/internal/delivery/http/middleware"
	"zilptext/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	{
		api.POST("/sign-up", r.accountHandler.SignUp)
		api.POST("/social-sign-up", r.accountHandler.SocialSignUp)
		api.POST("/sign-in", r.accountHandler.SignIn)
		api.POST("/social-sign-in", r.accountHandler.SocialSignIn)

		// Opened from the email client, hence GET with query parameters
		api.GET("/email-verification", r.accountHandler.VerifyEmail)

		api.GET("/profile-pic/:id", r.accountHandler.ProfilePic)
	}

	// Routes that require a valid session token
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/check-auth", r.accountHandler.CheckAuth)
	}
}
