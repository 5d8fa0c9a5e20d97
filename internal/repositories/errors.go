package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when no object is stored under a key
	ErrNotFound = errors.New("object not found")

	// ErrInvalidKey is returned when an object key is rejected
	ErrInvalidKey = errors.New("invalid key")

	// ErrConnection is returned when the backing database is unavailable
	ErrConnection = errors.New("database connection error")

	// ErrEncoding is returned when a stored value cannot be decoded
	ErrEncoding = errors.New("stored value has unexpected type")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	Key     string // Object key (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Key != "" {
		return fmt.Sprintf("%s %s operation failed for key %s: %v", e.Entity, e.Op, e.Key, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, key string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		Key:    key,
		Err:    err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(entity, key string) *RepositoryError {
	return &RepositoryError{
		Op:      "get",
		Entity:  entity,
		Key:     key,
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with key %s not found", entity, key),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     ErrConnection,
		Message: fmt.Sprintf("database connection failed: %v", err),
	}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidKey checks if an error is an "invalid key" error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}
