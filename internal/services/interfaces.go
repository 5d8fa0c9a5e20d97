package services

import (
	"context"
	"net/url"

	"helloworld-api/internal/models"
)

// CityService resolves cities to their state
type CityService interface {
	// Lookup returns the state code for city, matched case-insensitively.
	// Unknown cities yield a BadRequestError listing the valid choices.
	Lookup(ctx context.Context, city string) (string, error)

	// Cities returns the directory's city names in order
	Cities(ctx context.Context) []string
}

// ObjectService reads and writes the key/value object store
type ObjectService interface {
	// Get returns the document stored under key, or a NotFoundError carrying key
	Get(ctx context.Context, key string) (models.Document, error)

	// Put stores doc under key, replacing any previous value
	Put(ctx context.Context, key string, doc models.Document) error

	// Count returns the number of stored objects
	Count(ctx context.Context) (int64, error)
}

// CORSService decides which origins may read cross-origin responses
type CORSService interface {
	// Check matches origin exactly against the allow-list
	Check(ctx context.Context, origin string) models.OriginDecision
}

// FormService projects form-encoded bodies
type FormService interface {
	// States parses a form-encoded body and returns the values of its "states" field
	States(ctx context.Context, body []byte) ([]string, error)

	// StatesFromValues returns the "states" values of an already-parsed form
	StatesFromValues(values url.Values) []string
}
