package services

import (
	"context"
	"fmt"

	"helloworld-api/internal/models"
	"helloworld-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// objectService implements ObjectService on top of an ObjectRepository
type objectService struct {
	repo   repositories.ObjectRepository
	logger *logrus.Logger
}

// NewObjectService creates a new object service
func NewObjectService(repo repositories.ObjectRepository, logger *logrus.Logger) ObjectService {
	if logger == nil {
		logger = logrus.New()
	}
	return &objectService{
		repo:   repo,
		logger: logger,
	}
}

// Get implements ObjectService.Get
func (s *objectService) Get(ctx context.Context, key string) (models.Document, error) {
	doc, err := s.repo.Get(ctx, key)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, NewNotFoundError(key, err)
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return doc, nil
}

// Put implements ObjectService.Put
func (s *objectService) Put(ctx context.Context, key string, doc models.Document) error {
	if err := s.repo.Put(ctx, key, doc); err != nil {
		if repositories.IsInvalidKey(err) {
			return NewBadRequestError(fmt.Sprintf("Invalid object key '%s'", key))
		}
		return fmt.Errorf("failed to put object: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":  key,
		"size": len(doc),
	}).Debug("Object written")

	return nil
}

// Count implements ObjectService.Count
func (s *objectService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
