package dependency_container

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	handlers "github.com/NeuralTrust/AuthGuard/pkg/handlers/http"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/auditlogs"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/cache"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/database"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/jwt"
	_ "github.com/NeuralTrust/AuthGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/repository"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/resilience"
	"github.com/NeuralTrust/AuthGuard/pkg/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type Container struct {
	RedisClient         *redis.Client
	DB                  *database.DB
	PolicyRegistry      policy.Registry
	Classifier          policy.Classifier
	GuardService        guard.Service
	Administrator       guard.Administrator
	AuditLogsService    auditlogs.Service
	JWTManager          jwt.Manager
	MiddlewareTransport *middleware.Transport
	HandlerTransport    *handlers.HandlerTransport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	if cfg.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{Enabled: true})
	}

	redisClient, err := cache.NewClient(cfg.Redis, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	var db *database.DB
	if cfg.Database.Enabled {
		db, err = database.NewDB(di.Logger, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	sink, err := newSecuritySink(di.Logger, &cfg.Events, db)
	if err != nil {
		return nil, err
	}
	auditLogsService := auditlogs.NewService(di.Logger, sink, &auditlogs.ServiceOpts{
		BufferSize: cfg.Events.BufferSize,
		Workers:    cfg.Events.Workers,
	})
	auditLogsService.Start()

	registry, err := policy.NewRegistryFromConfig(&cfg.Guard)
	if err != nil {
		return nil, fmt.Errorf("invalid guard policy: %w", err)
	}
	classifier := policy.NewClassifier(di.Logger, policy.RoutesFromConfig(&cfg.Guard), registry)

	stores := newGuardedStores(di.Logger, &cfg.Guard, redisClient, auditLogsService)
	serviceOpts := &guard.ServiceOpts{
		FailMode:              guard.FailMode(cfg.Guard.FailMode),
		Window:                cfg.Guard.Window,
		DenylistThreshold:     cfg.Guard.DenylistThreshold,
		DenylistMaxDays:       cfg.Guard.DenylistMaxDays,
		DenylistEventInterval: cfg.Guard.DenylistEventInterval,
	}
	guardService := guard.NewService(di.Logger, registry, stores, auditLogsService, serviceOpts)
	administrator := guard.NewAdministrator(di.Logger, registry, stores, auditLogsService, serviceOpts)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	middlewareTransport := &middleware.Transport{
		AuthGuardMiddleware: middleware.NewAuthGuardMiddleware(di.Logger, classifier, guardService, &middleware.AuthGuardOpts{
			TrustForwardedHeaders: cfg.Guard.TrustForwardedHeaders,
			MaxIdentityBodyBytes:  cfg.Guard.MaxIdentityBodyBytes,
		}),
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(di.Logger),
		SecurityMiddleware:     middleware.NewSecurityMiddleware(di.Logger),
	}

	handlerTransport := &handlers.HandlerTransport{
		// Proxy
		ForwardedHandler: handlers.NewForwardedHandler(di.Logger, &cfg.Server),
		// Denylist
		GetDenylistEntryHandler:    handlers.NewGetDenylistEntryHandler(di.Logger, administrator),
		CreateDenylistEntryHandler: handlers.NewCreateDenylistEntryHandler(di.Logger, administrator),
		DeleteDenylistEntryHandler: handlers.NewDeleteDenylistEntryHandler(di.Logger, administrator),
		// Scopes
		GetScopeStatusHandler: handlers.NewGetScopeStatusHandler(di.Logger, administrator),
		UnlockScopeHandler:    handlers.NewUnlockScopeHandler(di.Logger, administrator),
		// System
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
		HealthHandler:     handlers.NewHealthHandler(di.Logger, redisClient),
	}

	return &Container{
		RedisClient:         redisClient,
		DB:                  db,
		PolicyRegistry:      registry,
		Classifier:          classifier,
		GuardService:        guardService,
		Administrator:       administrator,
		AuditLogsService:    auditLogsService,
		JWTManager:          jwtManager,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
	}, nil
}

// Close drains pending security events before releasing the connections
// they may still need.
func (c *Container) Close() error {
	var firstErr error
	if err := c.AuditLogsService.Close(); err != nil {
		firstErr = err
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := c.RedisClient.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func newSecuritySink(logger *logrus.Logger, cfg *config.EventsConfig, db *database.DB) (security.Sink, error) {
	var sinks []security.Sink
	if cfg.LogEnabled {
		sinks = append(sinks, auditlogs.NewLogSink(logger))
	}

	kafkaConfig, err := auditlogs.DecodeKafkaConfig(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	if kafkaConfig.Enabled {
		kafkaSink, err := auditlogs.NewKafkaSink(kafkaConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize kafka sink: %w", err)
		}
		sinks = append(sinks, kafkaSink)
	}

	if cfg.Postgres.Enabled {
		if db == nil {
			logger.Warn("postgres event sink enabled but database is disabled, skipping")
		} else {
			sinks = append(sinks, auditlogs.NewPostgresSink(db.DB))
		}
	}

	logger.WithField("sinks", len(sinks)).Info("security event sinks configured")
	return auditlogs.NewMultiSink(sinks...), nil
}

func newGuardedStores(
	logger *logrus.Logger,
	cfg *config.GuardConfig,
	redisClient *redis.Client,
	emitter security.Emitter,
) guard.Stores {
	breaker := func(name string) resilience.CircuitBreaker {
		return resilience.NewCircuitBreaker(name, resilience.BreakerConfig{
			MaxFailures:  cfg.Breaker.MaxFailures,
			OpenTimeout:  cfg.Breaker.OpenTimeout,
			IsSuccessful: resilience.IsExpectedError,
			OnOpen: func(name string) {
				logger.WithField("store", name).Warn("guard store circuit breaker opened")
				event := security.NewEvent(security.EventTypeGuardStoreFailure, security.SeverityMedium)
				event.Details["store"] = name
				emitter.Emit(context.Background(), event)
			},
		})
	}

	return guard.Stores{
		Failures: resilience.NewGuardedFailureStore(
			repository.NewRedisFailureStore(redisClient, nil),
			cfg.StoreTimeout,
			breaker("failures"),
		),
		Lockouts: resilience.NewGuardedLockoutStore(
			repository.NewRedisLockoutStore(redisClient),
			cfg.StoreTimeout,
			breaker("lockouts"),
		),
		Violations: resilience.NewGuardedViolationCounter(
			repository.NewRedisViolationCounter(redisClient, cfg.ViolationTTL),
			cfg.StoreTimeout,
			breaker("violations"),
		),
		Denylist: resilience.NewGuardedDenylistStore(
			repository.NewRedisDenylistStore(redisClient),
			cfg.StoreTimeout,
			breaker("denylist"),
		),
	}
}
