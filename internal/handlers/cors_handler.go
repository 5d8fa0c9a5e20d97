package handlers

import (
	"net/http"

	"helloworld-api/internal/middleware"
	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// CustomCORSConfig is the CORS configuration of GET /custom_cors
func CustomCORSConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigin:      "*",
		AllowHeaders:     []string{"X-Special-Header"},
		ExposeHeaders:    []string{"X-Special-Header"},
		MaxAge:           600,
		AllowCredentials: true,
	}
}

// CORSHandler serves the CORS demonstration routes
type CORSHandler struct {
	corsService services.CORSService
}

// NewCORSHandler creates a new CORS handler
func NewCORSHandler(corsService services.CORSService) *CORSHandler {
	return &CORSHandler{corsService: corsService}
}

// @Summary Route with a custom CORS configuration
// @Tags cors
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /custom_cors [get]
func (h *CORSHandler) CustomCORS(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cors": true})
}

// @Summary Check the request origin against the allow-list
// @Description Echoes Access-Control-Allow-Origin only for allowed origins
// @Tags cors
// @Produce plain
// @Param Origin header string false "Request origin"
// @Success 200 {string} string
// @Router /cors_multiple_origins [get]
func (h *CORSHandler) MultipleOrigins(c *gin.Context) {
	decision := h.corsService.Check(c.Request.Context(), c.GetHeader("Origin"))
	for k, v := range decision.Headers() {
		c.Header(k, v)
	}
	c.String(http.StatusOK, decision.Body())
}
