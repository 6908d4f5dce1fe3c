package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/orderdesk/console/internal/api/handler"
	"github.com/orderdesk/console/internal/api/middleware"
	"github.com/orderdesk/console/internal/core/ports"
	"github.com/orderdesk/console/internal/core/service"
	"github.com/orderdesk/console/internal/guard"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions  *service.SessionService
	Orders    ports.OrderService
	Clients   ports.ClientService
	Users     ports.UserService
	Dashboard ports.DashboardService
	Store     ports.KV
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Route protection mirrors the dashboard's navigation rules: everything
// except login, probes, metrics and docs needs a session; clients
// management is admin-only.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	protected := middleware.Guard(deps.Sessions, guard.Protected)
	adminOnly := middleware.Guard(deps.Sessions, guard.AdminOnly)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	clientHandler := handler.NewClientHandler(deps.Clients)
	userHandler := handler.NewUserHandler(deps.Users)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	settingsHandler := handler.NewSettingsHandler(deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Protected routes ---
	orders := e.Group("/orders", protected)
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	employees := e.Group("/employees", protected)
	employees.GET("", userHandler.List)
	employees.POST("", userHandler.Create)
	employees.GET("/:id", userHandler.Get)
	employees.PUT("/:id", userHandler.Update)
	employees.PUT("/:id/role", userHandler.ChangeRole)
	employees.DELETE("/:id", userHandler.Delete)

	e.GET("/dashboard", dashboardHandler.Overview, protected)
	e.GET("/analytics", dashboardHandler.Analytics, protected)

	e.GET("/settings", settingsHandler.Get, protected)
	e.PUT("/settings", settingsHandler.Update, protected)

	// --- Admin-only routes (clients management) ---
	clients := e.Group("/clients", adminOnly)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the session store up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
