package server

import (
	"context"
	"fmt"

	"helloworld-api/internal/config"
	"helloworld-api/internal/database"
	"helloworld-api/internal/handlers"
	"helloworld-api/internal/middleware"
	"helloworld-api/internal/repositories"
	"helloworld-api/internal/repositories/memory"
	"helloworld-api/internal/repositories/sqlite"
	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Services *services.ServiceContainer
	Router   *gin.Engine

	// Internal dependencies
	objectRepo repositories.ObjectRepository
	db         *database.ConnectionManager
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := config.NewLogger(cfg.Log)
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	objectRepo, err := container.newObjectRepository()
	if err != nil {
		return nil, err
	}
	container.objectRepo = objectRepo

	serviceContainer, err := services.NewServiceContainer(objectRepo, &services.ServiceConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	container.Services = serviceContainer

	h, err := handlers.NewHandlers(serviceContainer, cfg.AppName, cfg.Stage)
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to create handlers: %w", err)
	}

	routerConfig := &handlers.RouterConfig{
		Handlers:  h,
		AppName:   cfg.AppName,
		Debug:     cfg.Debug,
		RateLimit: cfg.RateLimit.RequestsPerSecond,
		Burst:     cfg.RateLimit.Burst,
	}
	if cfg.Metrics.Enabled {
		routerConfig.Metrics = container.newMetrics()
		routerConfig.MetricsPath = cfg.Metrics.Path
	}
	container.Router = handlers.NewRouter(routerConfig)

	logger.WithFields(logrus.Fields{
		"app":           cfg.AppName,
		"environment":   cfg.Environment,
		"store_backend": cfg.Store.Backend,
		"debug":         cfg.Debug,
		"metrics":       cfg.Metrics.Enabled,
	}).Info("Container initialized")

	return container, nil
}

// newObjectRepository selects the object store backend from configuration
func (c *Container) newObjectRepository() (repositories.ObjectRepository, error) {
	switch repositories.Backend(c.Config.Store.Backend) {
	case repositories.BackendMemory, "":
		return memory.NewObjectRepository(c.Logger), nil

	case repositories.BackendSQLite:
		cm := database.NewConnectionManager(&database.ConnectionConfig{Logger: c.Logger})
		if err := cm.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect object database: %w", err)
		}
		c.db = cm
		return sqlite.NewObjectRepository(cm.GetDB(), c.Logger), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", c.Config.Store.Backend)
	}
}

// newMetrics creates the request metrics and an object count gauge
func (c *Container) newMetrics() *middleware.MetricsBuilder {
	builder := &middleware.MetricsBuilder{
		Namespace: "helloworld",
		Subsystem: "http",
		Name:      "response_ms",
		Help:      "HTTP response latency in milliseconds by route pattern",
	}

	builder.GaugeFunc("objects_stored", "Number of objects in the object store", func() float64 {
		count, err := c.Services.ObjectService.Count(context.Background())
		if err != nil {
			c.Logger.WithError(err).Warn("Failed to count objects for metrics")
			return 0
		}
		return float64(count)
	})

	return builder
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.objectRepo != nil {
		if err := c.objectRepo.Close(); err != nil {
			return fmt.Errorf("failed to close object repository: %w", err)
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
