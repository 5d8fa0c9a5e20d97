package handlers

import (
	"net/http"
	"time"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness along with what the service is serving
type HealthHandler struct {
	appName       string
	objectService services.ObjectService
	cityService   services.CityService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(appName string, objectService services.ObjectService, cityService services.CityService) *HealthHandler {
	return &HealthHandler{appName: appName, objectService: objectService, cityService: cityService}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.objectService.Count(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": h.appName,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   h.appName,
		"objects":   count,
		"cities":    h.cityService.Cities(ctx),
		"timestamp": time.Now().UTC(),
	})
}
