// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
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
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Current-user lookup requires a valid token
	authGroup.GET("/user/data", r.authHandler.GetCurrentUser, r.authMiddleware.Authenticate)

	// Blog routes all require authentication
	blogGroup := e.Group("/blog")
	blogGroup.Use(r.authMiddleware.Authenticate)
	{
		blogGroup.POST("/create", r.blogHandler.Create)
		blogGroup.GET("/all", r.blogHandler.ListAll)
		blogGroup.GET("/author/:authorId", r.blogHandler.ListByAuthor)
		blogGroup.GET("/:blogId", r.blogHandler.GetByID)
		blogGroup.PUT("/update/:blogId", r.blogHandler.Update)
		blogGroup.DELETE("/delete/:blogId", r.blogHandler.Delete)
	}
}
