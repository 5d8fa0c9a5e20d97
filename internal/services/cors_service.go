package services

import (
	"context"

	"helloworld-api/internal/models"
)

// corsService implements CORSService over a static allow-list
type corsService struct {
	allowed *models.OriginAllowList
}

// NewCORSService creates a new CORS service
func NewCORSService(allowed *models.OriginAllowList) CORSService {
	return &corsService{allowed: allowed}
}

// Check implements CORSService.Check
func (s *corsService) Check(ctx context.Context, origin string) models.OriginDecision {
	return models.OriginDecision{
		Origin:  origin,
		Allowed: s.allowed.Contains(origin),
	}
}
