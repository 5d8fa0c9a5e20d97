package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResourceHandler echoes path parameters
type ResourceHandler struct{}

// NewResourceHandler creates a new resource handler
func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

// @Summary Echo a path parameter
// @Tags resource
// @Accept json
// @Produce json
// @Param value path string true "Value to echo"
// @Success 200 {object} map[string]string
// @Router /resource/{value} [put]
func (h *ResourceHandler) PutResource(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"value": c.Param("value")})
}
