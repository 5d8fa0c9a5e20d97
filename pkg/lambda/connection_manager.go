package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"helloworld-api/internal/config"
	"helloworld-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// ConnectionManager owns the container of a Lambda execution environment.
// The container, and with it the object store, is built on first use and
// reused across warm invocations.
type ConnectionManager struct {
	mu        sync.RWMutex
	container *server.Container
	config    *config.Config
	lastUsed  time.Time

	// loadConfig is overridable in tests
	loadConfig func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager()
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager that loads configuration
// for the current deployment mode on first use
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{loadConfig: config.GetOptimizedConfig}
}

// Initialize builds the container from cfg. It is a no-op once initialized.
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}

	sc := config.GetServerlessConfig()
	container.Logger.WithFields(logrus.Fields{
		"function": sc.FunctionName,
		"region":   sc.Region,
		"stage":    cfg.Stage,
		"backend":  cfg.Store.Backend,
	}).Info("Lambda container initialized")

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the container, initializing it if necessary.
// A failed initialization is retried on the next call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	container, cfg := cm.container, cm.config
	cm.mu.RUnlock()

	if container != nil {
		cm.UpdateLastUsed()
		return container, nil
	}

	if cfg == nil {
		loaded, err := cm.loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.container == nil {
		return nil, fmt.Errorf("container released during initialization")
	}
	cm.lastUsed = time.Now()
	return cm.container, nil
}

// Handle serves one API Gateway proxy event through the application router
func (cm *ConnectionManager) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := cm.GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return NewHandler(container.Router)(ctx, event)
}

// IsHealthy checks if the connection manager is healthy
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return cm.container != nil
}

// LastUsed returns when the container last served an invocation
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}

// Cleanup releases the container; the next invocation builds a fresh one
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	return nil
}

// UpdateLastUsed updates the last used timestamp
func (cm *ConnectionManager) UpdateLastUsed() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
}
