// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plateful/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	RecipeHandler *handler.RecipeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	recipeHandler *handler.RecipeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		recipeHandler: params.RecipeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authentication is enforced inside the usecases, which resolve the session
// cookie themselves, so no route group carries an auth middleware.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle
	e.POST("/signup", r.authHandler.Signup)
	e.GET("/check_session", r.authHandler.CheckSession)
	e.POST("/login", r.authHandler.Login)
	e.DELETE("/logout", r.authHandler.Logout)

	// Recipes
	e.GET("/recipes", r.recipeHandler.List)
	e.POST("/recipes", r.recipeHandler.Create)
}
