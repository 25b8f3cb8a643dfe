// Package app wires the admin dashboard's dependencies and runs the HTTP
// server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TVAexe/ar-fe-admin/pkg/database"
	"github.com/TVAexe/ar-fe-admin/pkg/health"
	"github.com/TVAexe/ar-fe-admin/pkg/httpclient"
	pkgkafka "github.com/TVAexe/ar-fe-admin/pkg/kafka"
	"github.com/TVAexe/ar-fe-admin/pkg/tracing"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/config"
	"github.com/TVAexe/ar-fe-admin/internal/event"
	handler "github.com/TVAexe/ar-fe-admin/internal/handler/http"
	"github.com/TVAexe/ar-fe-admin/internal/service"
	"github.com/TVAexe/ar-fe-admin/internal/storage"
)

// App wires together all dependencies and runs the admin dashboard service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	redis           *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingCfg := tracing.DefaultConfig("admin-dashboard")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.SampleRate = cfg.TracingSampleRate
	if cfg.OTELEndpoint != "" {
		tracingCfg.OTLPEndpoint = cfg.OTELEndpoint
		tracingCfg.Enabled = true
	}
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Redis response cache.
	redisClient, err := database.NewRedisClient(ctx, database.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("host", cfg.RedisHost),
		slog.Int("port", cfg.RedisPort),
	)

	// Kafka producer for admin activity events.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Outbound HTTP client with retries and a circuit breaker shared by the
	// catalog and file storage clients.
	baseClient := httpclient.New(httpclient.Config{
		Timeout:         cfg.UpstreamTimeout,
		MaxRetries:      cfg.UpstreamMaxRetries,
		RetryWaitMin:    500 * time.Millisecond,
		RetryWaitMax:    5 * time.Second,
		MaxConnsPerHost: 50,
	})
	upstreamClient := httpclient.NewCircuitBreakerClient(
		baseClient,
		httpclient.DefaultCircuitBreakerConfig("catalog-backend"),
		logger,
	)

	// Build the dependency graph.
	catalogClient := backend.NewClient(upstreamClient, cfg.BackendAPIURL, logger)
	fileStorage := storage.NewClient(upstreamClient, cfg.BackendAPIURL, cfg.StoragePublicBaseURL, logger)
	cacheStore := cache.NewRedisStore(redisClient, cfg.CacheTTL)
	eventProducer := event.NewProducer(producer, logger)

	services := handler.Services{
		Products:   service.NewProductService(catalogClient, fileStorage, cacheStore, eventProducer, logger),
		Categories: service.NewCategoryService(catalogClient, cacheStore, eventProducer, logger),
		Orders:     service.NewOrderService(catalogClient, cacheStore, eventProducer, logger),
		Users:      service.NewUserService(catalogClient, cacheStore, eventProducer, logger),
		Roles:      service.NewRoleService(catalogClient, cacheStore, eventProducer, logger),
		Stats:      service.NewStatsService(catalogClient, catalogClient, catalogClient, cacheStore, logger),
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	router := handler.NewRouter(cfg, services, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		redis:           redisClient,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.redis.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
