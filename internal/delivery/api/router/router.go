// Package router maps console API paths to handlers.
package router

import (
	"notifyconsole/config"
	"notifyconsole/internal/delivery/api/router/handler"
	"notifyconsole/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	UserHandler     *handler.UserHandler
	PackageHandler  *handler.PackageHandler
	DispatchHandler *handler.DispatchHandler
	SessionHandler  *handler.SessionHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	userHandler     *handler.UserHandler
	packageHandler  *handler.PackageHandler
	dispatchHandler *handler.DispatchHandler
	sessionHandler  *handler.SessionHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		userHandler:     params.UserHandler,
		packageHandler:  params.PackageHandler,
		dispatchHandler: params.DispatchHandler,
		sessionHandler:  params.SessionHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.GET("/:id/profile", r.userHandler.GetProfile)
		usersGroup.PUT("/:id/profile/:channel", r.userHandler.SaveChannel)
		usersGroup.POST("/:id/profile/link", r.userHandler.LinkProfile)
		usersGroup.GET("/:id/messages", r.userHandler.ListMessages)
		usersGroup.GET("/:id/subscriptions", r.userHandler.ListSubscriptions)
	}

	packagesGroup := apiV1.Group("/packages")
	{
		packagesGroup.GET("", r.packageHandler.ListPackages)
		packagesGroup.POST("", r.packageHandler.CreatePackage)
		packagesGroup.POST("/assign", r.packageHandler.AssignPackage)
		packagesGroup.GET("/:id", r.packageHandler.GetPackage)
	}

	dispatchGroup := apiV1.Group("/dispatch")
	{
		dispatchGroup.POST("/resolve", r.dispatchHandler.ResolveAudience)
		dispatchGroup.POST("/single", r.dispatchHandler.SendSingle)
		dispatchGroup.POST("/bulk", r.dispatchHandler.SendBulk)
		dispatchGroup.POST("/channel", r.dispatchHandler.SendChannel)
	}

	// Stateful console views: a paginator and a profile editor per session
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.CreateSession)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.DELETE("/:id", r.sessionHandler.DeleteSession)
		sessionsGroup.PATCH("/:id/directory", r.sessionHandler.UpdateDirectory)
		sessionsGroup.POST("/:id/editor", r.sessionHandler.SelectUser)
		sessionsGroup.PUT("/:id/editor/:channel", r.sessionHandler.SaveChannel)
		sessionsGroup.POST("/:id/editor/link", r.sessionHandler.RetryLink)
	}
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled in config.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
