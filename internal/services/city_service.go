package services

import (
	"context"
	"fmt"
	"strings"

	"helloworld-api/internal/models"

	"github.com/sirupsen/logrus"
)

// cityService implements CityService over an immutable directory
type cityService struct {
	directory *models.CityDirectory
	logger    *logrus.Logger
}

// NewCityService creates a new city service
func NewCityService(directory *models.CityDirectory, logger *logrus.Logger) CityService {
	if logger == nil {
		logger = logrus.New()
	}
	return &cityService{
		directory: directory,
		logger:    logger,
	}
}

// Lookup implements CityService.Lookup
func (s *cityService) Lookup(ctx context.Context, city string) (string, error) {
	if state, ok := s.directory.State(city); ok {
		return state, nil
	}

	s.logger.WithField("city", city).Debug("Unknown city requested")
	return "", NewBadRequestError(unknownCityMessage(city, s.directory.Names()))
}

// Cities implements CityService.Cities
func (s *cityService) Cities(ctx context.Context) []string {
	return s.directory.Names()
}

func unknownCityMessage(city string, valid []string) string {
	choices := make([]string, len(valid))
	for i, name := range valid {
		choices[i] = models.TitleCity(name)
	}
	return fmt.Sprintf("Unknown city '%s', valid choices are : %s",
		models.TitleCity(city), strings.Join(choices, ", "))
}
