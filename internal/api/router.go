package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/workcity/project-tracker/internal/api/handler"
	"github.com/workcity/project-tracker/internal/api/middleware"
	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Auth     ports.AuthService
	Clients  ports.ClientService
	Projects ports.ProjectService
	Resolver ports.CredentialResolver

	// AuthLimiter throttles signup and login attempts; nil disables it.
	AuthLimiter middleware.Limiter
	// ReadyChecks are probed by GET /health/ready.
	ReadyChecks map[string]handler.Check

	// MetricsRegisterer receives the HTTP request metrics; nil means the
	// default prometheus registry.
	MetricsRegisterer prometheus.Registerer

	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Protected routes run Auth, then RBAC, then the handler, so an
// unauthenticated or unauthorized request never reaches validation or the
// store.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tracker",
		Registerer: d.MetricsRegisterer,
	}))
	if d.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(d.RequestTimeout))
	}

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(d.ReadyChecks)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)       // liveness: is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := api.Group("/auth")
	if d.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(d.AuthLimiter, "auth", d.Logger))
	}
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	requireAuth := middleware.Auth(d.Resolver)
	writers := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)
	admins := middleware.RBAC(domain.RoleAdmin)

	// --- Clients ---
	clientHandler := handler.NewClientHandler(d.Clients)
	clients := api.Group("/clients", requireAuth)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create, writers)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update, admins)
	clients.DELETE("/:id", clientHandler.Delete, admins)

	// --- Projects ---
	projectHandler := handler.NewProjectHandler(d.Projects)
	projects := api.Group("/projects", requireAuth)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create, writers)
	projects.GET("/client/:clientId", projectHandler.ListByClient)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update, admins)
	projects.DELETE("/:id", projectHandler.Delete, admins)

	return e
}
