// Package http - Router configuration for the REST API.
//
// The router assembles the handlers and the middleware chain into one
// entry point. Handlers receive only the narrow service interfaces they
// need; middleware is applied per route group.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/adapters/http/handlers"
	"github.com/Haleralex/peoplehub/internal/adapters/http/middleware"
)

// ============================================
// Router Configuration
// ============================================

// RouterConfig configures the router and its middleware chain.
type RouterConfig struct {
	// Logger for the middleware
	Logger *slog.Logger
	// Pool is used by the health checks
	Pool *pgxpool.Pool
	// Redis backs the distributed rate limiter and the readiness check.
	// Nil falls back to in-memory rate limiting.
	Redis *redis.Client
	// Version of the application
	Version string
	// BuildTime of the binary
	BuildTime string
	// Environment (development, staging, production)
	Environment string
	// AllowedOrigins for CORS in production
	AllowedOrigins []string
	// AuthTokenValidator validates bearer tokens on protected routes
	AuthTokenValidator func(token string) (*middleware.AuthClaims, error)
	// TracingEnabled turns on the OpenTelemetry gin instrumentation
	TracingEnabled bool
}

// DefaultRouterConfig returns a development configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Logger:         slog.Default(),
		Version:        "dev",
		BuildTime:      "unknown",
		Environment:    "development",
		AllowedOrigins: []string{"*"},
		AuthTokenValidator: middleware.NewJWTTokenValidator(middleware.JWTConfig{
			Secret: "dev-secret",
		}),
	}
}

// ============================================
// Service Providers
// ============================================

// PersonServices carries the two person service versions. V1 keeps the
// original update semantics; V2 validates against the stricter rule set
// and is mounted only on the v2 write routes.
type PersonServices struct {
	V1 handlers.PersonService
	V2 handlers.PersonService
}

// Services groups the application services the router wires in.
type Services struct {
	People          *PersonServices
	Addresses       handlers.AddressService
	PeopleAddresses handlers.PersonAddressService
	Auth            handlers.AuthService
	Users           handlers.UserService
}

// ============================================
// Router Builder
// ============================================

// RouterBuilder configures a router step by step.
type RouterBuilder struct {
	config   *RouterConfig
	services *Services
}

// NewRouterBuilder creates a builder.
func NewRouterBuilder(config *RouterConfig) *RouterBuilder {
	if config == nil {
		config = DefaultRouterConfig()
	}
	return &RouterBuilder{config: config}
}

// WithServices sets the application services.
func (b *RouterBuilder) WithServices(services *Services) *RouterBuilder {
	b.services = services
	return b
}

// Build creates the configured gin engine.
func (b *RouterBuilder) Build() *gin.Engine {
	if b.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	handlers.SetupValidator()

	// ============================================
	// Global Middleware
	// ============================================

	// Recovery goes first so it catches panics from everything below
	router.Use(middleware.Recovery(&middleware.RecoveryConfig{
		Logger:           b.config.Logger,
		EnableStackTrace: b.config.Environment != "production",
	}))

	router.Use(middleware.RequestID())

	if b.config.Environment == "production" {
		router.Use(middleware.CORS(middleware.ProductionCORSConfig(b.config.AllowedOrigins)))
	} else {
		router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	}

	router.Use(middleware.Logging(&middleware.LoggingConfig{
		Logger:    b.config.Logger,
		SkipPaths: []string{"/health", "/live", "/ready", "/metrics"},
	}))

	var rateLimitStore middleware.RateLimitStore
	if b.config.Redis != nil {
		rateLimitStore = middleware.NewRedisStore(b.config.Redis)
	}
	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Store = rateLimitStore
	router.Use(middleware.RateLimit(globalLimit))

	router.Use(middleware.Metrics())

	if b.config.TracingEnabled {
		router.Use(otelgin.Middleware("peoplehub"))
	}

	// ============================================
	// Metrics Endpoint (no auth)
	// ============================================

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ============================================
	// Health Check Routes (no auth)
	// ============================================

	healthHandler := handlers.NewHealthHandler(
		b.config.Pool,
		b.config.Redis,
		b.config.Version,
		b.config.BuildTime,
	)
	healthHandler.RegisterRoutes(router)

	// ============================================
	// Public API Routes
	// ============================================

	api := router.Group("/api")

	// Credential endpoints are public but rate limited harder
	publicGroup := api.Group("")
	publicGroup.Use(middleware.LoginRateLimit(rateLimitStore))
	{
		if b.services != nil && b.services.Auth != nil {
			handlers.NewAuthHandler(b.services.Auth).RegisterRoutes(publicGroup)
		}
		if b.services != nil && b.services.Users != nil {
			handlers.NewUserHandler(b.services.Users).RegisterRoutes(publicGroup)
		}
	}

	// ============================================
	// Protected API Routes
	// ============================================

	authMiddleware := middleware.Auth(&middleware.AuthConfig{
		TokenValidator: b.config.AuthTokenValidator,
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware)
	{
		if b.services != nil && b.services.People != nil {
			handlers.NewPersonHandler(b.services.People.V1).RegisterRoutes(v1)
		}
		if b.services != nil && b.services.Addresses != nil {
			handlers.NewAddressHandler(b.services.Addresses).RegisterRoutes(v1)
		}
		if b.services != nil && b.services.PeopleAddresses != nil {
			handlers.NewPersonAddressHandler(b.services.PeopleAddresses).RegisterRoutes(v1)
		}
	}

	// v2 exposes only the person writes; reads stay on v1
	v2 := router.Group("/api/v2")
	v2.Use(authMiddleware)
	{
		if b.services != nil && b.services.People != nil {
			handlers.NewPersonHandler(b.services.People.V2).RegisterRoutesV2(v2)
		}
	}

	// ============================================
	// 404 Handler
	// ============================================

	router.NoRoute(func(c *gin.Context) {
		common.Error(c, 404, &common.APIError{
			Code:    common.ErrCodeNotFound,
			Message: "Endpoint not found",
		})
	})

	return router
}

// ============================================
// Quick Setup Functions
// ============================================

// NewRouter creates a router from a config (for the simple cases).
func NewRouter(config *RouterConfig, services *Services) *gin.Engine {
	return NewRouterBuilder(config).WithServices(services).Build()
}
