package services

import (
	"fmt"

	"helloworld-api/internal/models"
	"helloworld-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	CityService   CityService
	ObjectService ObjectService
	CORSService   CORSService
	FormService   FormService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Cities         []models.City
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(objectRepo repositories.ObjectRepository, config *ServiceConfig) (*ServiceContainer, error) {
	if objectRepo == nil {
		return nil, fmt.Errorf("object repository cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}
	if len(config.Cities) == 0 {
		config.Cities = models.DefaultCities()
	}
	if config.AllowedOrigins == nil {
		config.AllowedOrigins = models.DefaultAllowedOrigins()
	}

	return &ServiceContainer{
		CityService:   NewCityService(models.NewCityDirectory(config.Cities), config.Logger),
		ObjectService: NewObjectService(objectRepo, config.Logger),
		CORSService:   NewCORSService(models.NewOriginAllowList(config.AllowedOrigins)),
		FormService:   NewFormService(),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.CityService == nil {
		return fmt.Errorf("city service is nil")
	}
	if sc.ObjectService == nil {
		return fmt.Errorf("object service is nil")
	}
	if sc.CORSService == nil {
		return fmt.Errorf("cors service is nil")
	}
	if sc.FormService == nil {
		return fmt.Errorf("form service is nil")
	}

	return nil
}
