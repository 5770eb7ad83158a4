// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{accountHandler: params.AccountHandler}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")
	users.POST("/register", r.accountHandler.Register)
	users.POST("/login", r.accountHandler.Login)
}
