// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vgb/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ViewHandler   *handler.ViewHandler
	StreamHandler *handler.StreamHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	viewHandler   *handler.ViewHandler
	streamHandler *handler.StreamHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		viewHandler:   params.ViewHandler,
		streamHandler: params.StreamHandler,
	}
}

// RegisterRoutes sets up the rendering surface routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/view", r.viewHandler.GetView)
		apiGroup.POST("/intents", r.viewHandler.PostIntent)
		apiGroup.GET("/stream", r.streamHandler.Stream)
	}
}
