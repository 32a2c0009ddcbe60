package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/AhmetTK4/harmony/internal/api/handler"
	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/service"
	"github.com/AhmetTK4/harmony/internal/gateway"
	"github.com/AhmetTK4/harmony/internal/session"
)

// Options carries the router's runtime dependencies.
type Options struct {
	Gateway    *gateway.Gateway
	Sessions   session.Store
	SessionTTL time.Duration
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))
	e.Use(middleware.ResolveSession(opts.Sessions, opts.Log))

	// --- Dependencies ---
	users := gateway.NewUserClient(opts.Gateway)
	products := gateway.NewProductClient(opts.Gateway)
	orders := gateway.NewOrderClient(opts.Gateway)
	notifications := gateway.NewNotificationClient(opts.Gateway)

	authService := service.NewAuthService(users, opts.SessionTTL, opts.Log)

	sessionHandler := handler.NewSessionHandler(authService)
	userHandler := handler.NewUserHandler(users)
	productHandler := handler.NewProductHandler(products)
	orderHandler := handler.NewOrderHandler(orders)
	notificationHandler := handler.NewNotificationHandler(notifications)
	healthHandler := handler.NewHealthHandler()
	upstreamHealth := handler.NewUpstreamHealthHandler(users, products, orders, notifications)

	// --- Probes and operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Session lifecycle (no auth required) ---
	e.POST("/api/session/login", sessionHandler.Login)
	e.POST("/api/session/register", sessionHandler.Register)
	e.DELETE("/api/session", sessionHandler.Logout)
	e.GET("/api/session", sessionHandler.Show)

	// Aggregate upstream health: the probes themselves are unauthenticated.
	e.GET("/api/health", upstreamHealth.Check)

	// --- Authenticated console screens ---
	guarded := e.Group("/api", middleware.RequireAuth())

	guarded.GET("/users", userHandler.List)
	guarded.GET("/users/enabled", userHandler.ListEnabled)
	guarded.GET("/users/search", userHandler.Search)
	guarded.GET("/users/role/:role", userHandler.ListByRole)
	guarded.GET("/users/email/:email", userHandler.GetByEmail)
	guarded.GET("/users/:id", userHandler.Get)
	guarded.PUT("/users/:id", userHandler.Update)
	guarded.DELETE("/users/:id", userHandler.Delete)
	guarded.PUT("/users/:id/enable", userHandler.Enable)
	guarded.PUT("/users/:id/disable", userHandler.Disable)

	guarded.GET("/products", productHandler.List)
	guarded.GET("/products/category/:category", productHandler.ListByCategory)
	guarded.GET("/products/search", productHandler.Search)
	guarded.GET("/products/in-stock", productHandler.ListInStock)
	guarded.GET("/products/:id", productHandler.Get)
	guarded.POST("/products", productHandler.Create)
	guarded.PUT("/products/:id", productHandler.Update)
	guarded.DELETE("/products/:id", productHandler.Delete)

	guarded.GET("/orders", orderHandler.List)
	guarded.GET("/orders/user/:userId", orderHandler.ListByUser)
	guarded.GET("/orders/:id", orderHandler.Get)
	guarded.POST("/orders", orderHandler.Create)
	guarded.PUT("/orders/:id", orderHandler.Update)
	guarded.DELETE("/orders/:id", orderHandler.Delete)

	guarded.GET("/notifications", notificationHandler.List)
	guarded.GET("/notifications/user/:userId", notificationHandler.ListByUser)
	guarded.GET("/notifications/:id", notificationHandler.Get)
	guarded.POST("/notifications", notificationHandler.Create)
	guarded.PUT("/notifications/:id", notificationHandler.Update)
	guarded.DELETE("/notifications/:id", notificationHandler.Delete)
	guarded.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)

	return e
}
