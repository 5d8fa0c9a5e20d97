package memory

import (
	"context"

	"helloworld-api/internal/models"
	"helloworld-api/internal/repositories"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ObjectRepository keeps documents in process memory.
// Entries never expire; the store lives exactly as long as the process.
type ObjectRepository struct {
	c      *cache.Cache
	logger *logrus.Logger
}

// NewObjectRepository creates an empty in-memory object repository
func NewObjectRepository(logger *logrus.Logger) *ObjectRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &ObjectRepository{
		c:      cache.New(cache.NoExpiration, 0),
		logger: logger,
	}
}

// Get implements repositories.ObjectRepository.Get
func (r *ObjectRepository) Get(ctx context.Context, key string) (models.Document, error) {
	v, ok := r.c.Get(key)
	if !ok {
		return nil, repositories.NotFoundError(repositories.ObjectEntity, key)
	}

	doc, ok := v.(models.Document)
	if !ok {
		return nil, repositories.NewRepositoryError("get", repositories.ObjectEntity, key, repositories.ErrEncoding)
	}

	// Hand out a copy so callers cannot mutate the stored bytes
	return append(models.Document(nil), doc...), nil
}

// Put implements repositories.ObjectRepository.Put
func (r *ObjectRepository) Put(ctx context.Context, key string, doc models.Document) error {
	if err := repositories.ValidateKey(key); err != nil {
		return repositories.NewRepositoryError("put", repositories.ObjectEntity, key, err)
	}

	r.c.Set(key, append(models.Document(nil), doc...), cache.NoExpiration)

	r.logger.WithFields(logrus.Fields{
		"backend": repositories.BackendMemory,
		"key":     key,
		"size":    len(doc),
	}).Debug("Object stored")

	return nil
}

// Count implements repositories.ObjectRepository.Count
func (r *ObjectRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.c.ItemCount()), nil
}

// Close implements repositories.ObjectRepository.Close
func (r *ObjectRepository) Close() error {
	r.c.Flush()
	return nil
}
