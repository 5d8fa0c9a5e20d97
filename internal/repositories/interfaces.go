package repositories

import (
	"context"

	"helloworld-api/internal/models"
)

// ObjectEntity is the entity name used in repository errors
const ObjectEntity = "object"

// ObjectRepository stores JSON documents by key.
// Writes replace any previous value; nothing is ever deleted.
type ObjectRepository interface {
	// Get returns the document stored under key, or an ErrNotFound error
	Get(ctx context.Context, key string) (models.Document, error)

	// Put stores doc under key, replacing any previous value
	Put(ctx context.Context, key string, doc models.Document) error

	// Count returns the number of stored documents
	Count(ctx context.Context) (int64, error)

	// Close releases any resources held by the repository
	Close() error
}

// Backend names an ObjectRepository implementation
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// ValidateKey rejects keys no route could have produced
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
