package handlers

import (
	"net/http"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// CityHandler serves city lookups
type CityHandler struct {
	cityService services.CityService
}

// NewCityHandler creates a new city handler
func NewCityHandler(cityService services.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

// @Summary Look up the state of a city
// @Tags cities
// @Produce json
// @Param city path string true "City name, case-insensitive"
// @Success 200 {object} map[string]string
// @Failure 400 {object} middleware.ErrorResponse
// @Router /cities/{city} [get]
func (h *CityHandler) StateOfCity(c *gin.Context) {
	state, err := h.cityService.Lookup(c.Request.Context(), c.Param("city"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}
