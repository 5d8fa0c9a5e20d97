package database

import (
	"database/sql"
	"fmt"

	"helloworld-api/internal/repositories"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	// Name identifies the in-memory database; a random name is used when empty
	Name   string
	Logger *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Logger: logrus.New(),
	}
}

// ConnectionManager owns the in-memory SQLite database backing the object store.
// The database exists only while the connection is open and is never written to disk.
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
	dsn    string
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	if config == nil {
		config = DefaultConnectionConfig()
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ConnectionManager{
		config: config,
	}
}

// Connect opens the in-memory database and applies the schema
func (cm *ConnectionManager) Connect() error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	name := cm.config.Name
	if name == "" {
		name = "objects-" + uuid.New().String()
	}
	cm.dsn = MemoryDSN(name)

	db, err := sql.Open("sqlite3", cm.dsn)
	if err != nil {
		return repositories.ConnectionError(err)
	}

	// A shared-cache memory database vanishes when its last connection closes,
	// so pin exactly one connection for the lifetime of the manager.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return repositories.ConnectionError(err)
	}

	if err := NewMigrationManager(db, cm.config.Logger).RunMigrations(); err != nil {
		db.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	cm.db = db
	cm.config.Logger.WithField("database", name).Info("In-memory database ready")
	return nil
}

// GetDB returns the database connection
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Close closes the database connection, discarding its contents
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	cm.config.Logger.Info("Database connection closed")
	return nil
}

// MemoryDSN returns the go-sqlite3 DSN for a named shared in-memory database
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
