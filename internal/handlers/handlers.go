package handlers

import (
	"fmt"

	"helloworld-api/internal/services"
)

// Handlers groups the HTTP handlers of the application
type Handlers struct {
	Index      *IndexHandler
	CORS       *CORSHandler
	Introspect *IntrospectHandler
	City       *CityHandler
	Resource   *ResourceHandler
	Object     *ObjectHandler
	Health     *HealthHandler
}

// NewHandlers creates all handlers from the service container
func NewHandlers(container *services.ServiceContainer, appName, stage string) (*Handlers, error) {
	if container == nil {
		return nil, fmt.Errorf("service container cannot be nil")
	}
	if err := container.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	return &Handlers{
		Index:      NewIndexHandler(container.FormService),
		CORS:       NewCORSHandler(container.CORSService),
		Introspect: NewIntrospectHandler(stage),
		City:       NewCityHandler(container.CityService),
		Resource:   NewResourceHandler(),
		Object:     NewObjectHandler(container.ObjectService),
		Health:     NewHealthHandler(appName, container.ObjectService, container.CityService),
	}, nil
}
