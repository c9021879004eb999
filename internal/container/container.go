// Package container - Dependency Injection container for the application.
//
// Container owns the lifecycle of every dependency:
// - Creation
// - Access (getters)
// - Shutdown (cleanup)
//
// Pattern: Composition Root
// - Everything is wired in one place
// - Easy to test
// - Easy to swap implementations
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Haleralex/peoplehub/internal/adapters/http"
	"github.com/Haleralex/peoplehub/internal/adapters/http/middleware"
	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/application/services"
	"github.com/Haleralex/peoplehub/internal/config"
	"github.com/Haleralex/peoplehub/internal/domain/events"
	"github.com/Haleralex/peoplehub/internal/domain/validation"
	natsmsg "github.com/Haleralex/peoplehub/internal/infrastructure/messaging/nats"
	"github.com/Haleralex/peoplehub/internal/infrastructure/persistence/postgres"
	"github.com/Haleralex/peoplehub/internal/pkg/logger"
	"github.com/Haleralex/peoplehub/internal/pkg/tracing"
)

// ============================================
// Container
// ============================================

// Container is the application DI container.
type Container struct {
	config *config.Config
	logger *slog.Logger

	// Infrastructure
	pool          *pgxpool.Pool
	redisClient   *redis.Client
	natsPublisher *natsmsg.Publisher
	tracing       *tracing.Provider

	// Repositories
	personRepo  ports.PersonRepository
	addressRepo ports.AddressRepository
	userRepo    ports.UserRepository

	// Unit of Work
	uow ports.UnitOfWork

	// Event Publisher
	eventPublisher ports.EventPublisher

	// Services
	personService        *services.PersonService
	personServiceV2      *services.PersonServiceV2
	addressService       *services.AddressService
	personAddressService *services.PersonAddressService
	authService          *services.AuthService
	userService          *services.UserService

	// HTTP
	httpServer *http.Server
}

// New creates a container for the given configuration.
func New(cfg *config.Config) *Container {
	return &Container{
		config: cfg,
	}
}

// ============================================
// Initialization
// ============================================

// Initialize wires every dependency.
func (c *Container) Initialize(ctx context.Context) error {
	c.logger = c.initLogger()
	c.logger.Info("Initializing application container...")

	// 1. Tracing
	if err := c.initTracing(ctx); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	// 2. Database
	if err := c.initDatabase(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	c.logger.Info("Database connected")

	// 3. Redis (optional)
	if err := c.initRedis(ctx); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	// 4. Event publisher (NATS or no-op)
	if err := c.initEventPublisher(); err != nil {
		return fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	// 5. Repositories
	c.initRepositories()
	c.logger.Info("Repositories initialized")

	// 6. Services
	c.initServices()
	c.logger.Info("Services initialized")

	// 7. HTTP Server
	c.initHTTPServer()
	c.logger.Info("HTTP server initialized")

	c.logger.Info("Container initialization complete")
	return nil
}

// initLogger builds the application logger.
func (c *Container) initLogger() *slog.Logger {
	log := logger.New(&logger.Config{
		Level:     c.config.Log.Level,
		Format:    c.config.Log.Format,
		AddSource: c.config.App.Debug,
	})
	slog.SetDefault(log)
	return log
}

// initTracing installs the tracer provider.
func (c *Container) initTracing(ctx context.Context) error {
	provider, err := tracing.Setup(ctx, tracing.Config{
		ServiceName:    "peoplehub",
		ServiceVersion: c.config.App.Version,
		Environment:    c.config.App.Environment,
		OTLPEndpoint:   c.config.Tracing.OTLPEndpoint,
		SampleRate:     c.config.Tracing.SampleRate,
		Enabled:        c.config.Tracing.Enabled,
	})
	if err != nil {
		return err
	}
	c.tracing = provider
	return nil
}

// initDatabase opens the connection pool.
func (c *Container) initDatabase(ctx context.Context) error {
	pool, err := postgres.NewConnectionPool(ctx, postgres.Config{
		Host:            c.config.Database.Host,
		Port:            c.config.Database.Port,
		Database:        c.config.Database.Database,
		User:            c.config.Database.User,
		Password:        c.config.Database.Password,
		SSLMode:         c.config.Database.SSLMode,
		MaxConns:        c.config.Database.MaxConnections,
		MinConns:        c.config.Database.MinConnections,
		MaxConnLifetime: c.config.Database.MaxConnLifetime,
		MaxConnIdleTime: c.config.Database.MaxConnIdleTime,
	})
	if err != nil {
		return err
	}

	c.pool = pool
	return nil
}

// initRedis connects to Redis when enabled. Redis only backs the
// distributed rate limiter, so a failed ping is logged, not fatal.
func (c *Container) initRedis(ctx context.Context) error {
	if !c.config.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.config.Redis.Addr,
		Password: c.config.Redis.Password,
		DB:       c.config.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.Warn("Redis unreachable, falling back to in-memory rate limiting",
			slog.String("addr", c.config.Redis.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil
	}

	c.redisClient = client
	c.logger.Info("Redis connected", slog.String("addr", c.config.Redis.Addr))
	return nil
}

// initEventPublisher connects to NATS or installs a no-op publisher.
func (c *Container) initEventPublisher() error {
	if !c.config.NATS.Enabled {
		c.eventPublisher = noopPublisher{}
		return nil
	}

	publisher, err := natsmsg.NewPublisher(natsmsg.Config{
		URL:           c.config.NATS.URL,
		SubjectPrefix: c.config.NATS.SubjectPrefix,
		ClientName:    "peoplehub-api",
	})
	if err != nil {
		return err
	}

	c.natsPublisher = publisher
	c.eventPublisher = publisher
	c.logger.Info("NATS connected", slog.String("url", c.config.NATS.URL))
	return nil
}

// initRepositories builds the repositories.
func (c *Container) initRepositories() {
	c.personRepo = postgres.NewPersonRepository(c.pool)
	c.addressRepo = postgres.NewAddressRepository(c.pool)
	c.userRepo = postgres.NewUserRepository(c.pool)

	c.uow = postgres.NewUnitOfWork(c.pool)
}

// initServices builds the application services.
func (c *Container) initServices() {
	personValidator := validation.NewPersonValidator(c.personRepo)
	addressValidator := validation.NewAddressValidator()

	c.personService = services.NewPersonService(
		c.personRepo,
		c.addressRepo,
		personValidator,
		addressValidator,
		c.eventPublisher,
	)
	c.personServiceV2 = services.NewPersonServiceV2(c.personService)

	c.addressService = services.NewAddressService(
		c.addressRepo,
		c.personRepo,
		addressValidator,
		c.eventPublisher,
	)

	c.personAddressService = services.NewPersonAddressService(
		c.personRepo,
		c.addressRepo,
		personValidator,
		addressValidator,
		c.uow,
		c.eventPublisher,
	)

	c.authService = services.NewAuthService(c.userRepo, services.AuthConfig{
		Secret:   c.config.Auth.JWTSecret,
		Issuer:   c.config.Auth.JWTIssuer,
		Audience: c.config.Auth.JWTAudience,
		TokenTTL: c.config.Auth.AccessTokenExpiry,
	})

	c.userService = services.NewUserService(c.userRepo, c.eventPublisher)
}

// initHTTPServer builds the router and HTTP server.
func (c *Container) initHTTPServer() {
	tokenValidator := middlewareValidator(c.config)

	routerConfig := &http.RouterConfig{
		Logger:             c.logger,
		Pool:               c.pool,
		Redis:              c.redisClient,
		Version:            c.config.App.Version,
		BuildTime:          c.config.App.BuildTime,
		Environment:        c.config.App.Environment,
		AllowedOrigins:     c.config.CORS.AllowedOrigins,
		AuthTokenValidator: tokenValidator,
		TracingEnabled:     c.config.Tracing.Enabled,
	}

	router := http.NewRouter(routerConfig, &http.Services{
		People: &http.PersonServices{
			V1: c.personService,
			V2: c.personServiceV2,
		},
		Addresses:       c.addressService,
		PeopleAddresses: c.personAddressService,
		Auth:            c.authService,
		Users:           c.userService,
	})

	serverConfig := &http.ServerConfig{
		Host:            c.config.Server.Host,
		Port:            fmt.Sprintf("%d", c.config.Server.Port),
		ReadTimeout:     c.config.Server.ReadTimeout,
		WriteTimeout:    c.config.Server.WriteTimeout,
		IdleTimeout:     c.config.Server.IdleTimeout,
		ShutdownTimeout: c.config.Server.ShutdownTimeout,
		Logger:          c.logger,
	}

	c.httpServer = http.NewServer(serverConfig, router)
}

// ============================================
// Getters
// ============================================

// Config returns the configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Pool returns the database connection pool.
func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

// HTTPServer returns the HTTP server.
func (c *Container) HTTPServer() *http.Server {
	return c.httpServer
}

// ============================================
// Repository Getters
// ============================================

// PersonRepository returns the person repository.
func (c *Container) PersonRepository() ports.PersonRepository {
	return c.personRepo
}

// AddressRepository returns the address repository.
func (c *Container) AddressRepository() ports.AddressRepository {
	return c.addressRepo
}

// UserRepository returns the user repository.
func (c *Container) UserRepository() ports.UserRepository {
	return c.userRepo
}

// UnitOfWork returns the unit of work.
func (c *Container) UnitOfWork() ports.UnitOfWork {
	return c.uow
}

// ============================================
// Service Getters
// ============================================

// PersonService returns the v1 person service.
func (c *Container) PersonService() *services.PersonService {
	return c.personService
}

// PersonServiceV2 returns the v2 person service.
func (c *Container) PersonServiceV2() *services.PersonServiceV2 {
	return c.personServiceV2
}

// AddressService returns the address service.
func (c *Container) AddressService() *services.AddressService {
	return c.addressService
}

// PersonAddressService returns the combined person/address service.
func (c *Container) PersonAddressService() *services.PersonAddressService {
	return c.personAddressService
}

// AuthService returns the auth service.
func (c *Container) AuthService() *services.AuthService {
	return c.authService
}

// UserService returns the user service.
func (c *Container) UserService() *services.UserService {
	return c.userService
}

// ============================================
// Shutdown
// ============================================

// Shutdown gracefully stops every component.
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	var errs []error

	// 1. HTTP Server
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		}
	}

	// 2. NATS
	if c.natsPublisher != nil {
		c.natsPublisher.Close()
		c.logger.Info("NATS connection closed")
	}

	// 3. Redis
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		} else {
			c.logger.Info("Redis connection closed")
		}
	}

	// 4. Database (let in-flight queries finish)
	if c.pool != nil {
		done := make(chan struct{})
		go func() {
			c.pool.Close()
			close(done)
		}()

		select {
		case <-done:
			c.logger.Info("Database connection closed")
		case <-ctx.Done():
			c.logger.Warn("Database close timeout")
		}
	}

	// 5. Tracing
	if c.tracing != nil {
		if err := c.tracing.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	c.logger.Info("Container shutdown complete")
	return nil
}

// ============================================
// Run
// ============================================

// Run starts the application and blocks until a stop signal.
func (c *Container) Run() error {
	c.logger.Info("Starting PeopleHub API Server",
		slog.String("version", c.config.App.Version),
		slog.String("environment", c.config.App.Environment),
		slog.String("address", c.config.Server.Address()),
	)

	return c.httpServer.Run()
}

// ============================================
// Builder Pattern (Alternative)
// ============================================

// ContainerBuilder builds a container with custom components.
type ContainerBuilder struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	redisClient    *redis.Client
	eventPublisher ports.EventPublisher
}

// NewBuilder creates a new builder.
func NewBuilder(cfg *config.Config) *ContainerBuilder {
	return &ContainerBuilder{
		cfg: cfg,
	}
}

// WithLogger sets a custom logger.
func (b *ContainerBuilder) WithLogger(logger *slog.Logger) *ContainerBuilder {
	b.logger = logger
	return b
}

// WithPool sets a ready connection pool.
func (b *ContainerBuilder) WithPool(pool *pgxpool.Pool) *ContainerBuilder {
	b.pool = pool
	return b
}

// WithRedis sets a ready Redis client.
func (b *ContainerBuilder) WithRedis(client *redis.Client) *ContainerBuilder {
	b.redisClient = client
	return b
}

// WithEventPublisher sets a custom event publisher.
func (b *ContainerBuilder) WithEventPublisher(ep ports.EventPublisher) *ContainerBuilder {
	b.eventPublisher = ep
	return b
}

// Build assembles the container.
func (b *ContainerBuilder) Build(ctx context.Context) (*Container, error) {
	c := New(b.cfg)

	if b.logger != nil {
		c.logger = b.logger
	} else {
		c.logger = c.initLogger()
	}

	if b.pool != nil {
		c.pool = b.pool
	} else {
		if err := c.initDatabase(ctx); err != nil {
			return nil, err
		}
	}

	c.redisClient = b.redisClient

	if b.eventPublisher != nil {
		c.eventPublisher = b.eventPublisher
	} else {
		if err := c.initEventPublisher(); err != nil {
			return nil, err
		}
	}

	c.initRepositories()
	c.initServices()
	c.initHTTPServer()

	return c, nil
}

// ============================================
// Helpers
// ============================================

// middlewareValidator builds the JWT validator for the auth middleware
// from the same settings the auth service signs with.
func middlewareValidator(cfg *config.Config) func(token string) (*middleware.AuthClaims, error) {
	return middleware.NewJWTTokenValidator(middleware.JWTConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
	})
}

// noopPublisher drops events when no broker is configured.
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}

func (noopPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	return nil
}
