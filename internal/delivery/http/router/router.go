// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/internal/delivery/http/router/handler"
	"dispatch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OptimizeHandler *handler.OptimizeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	optimizeHandler *handler.OptimizeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		optimizeHandler: params.OptimizeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint backed by the service registry
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	{
		v1.POST("/routes/optimize", r.optimizeHandler.Optimize)
	}
}
