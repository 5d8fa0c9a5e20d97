package handlers

import (
	"net/http"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the root route
type IndexHandler struct {
	formService services.FormService
}

// NewIndexHandler creates a new index handler
func NewIndexHandler(formService services.FormService) *IndexHandler {
	return &IndexHandler{formService: formService}
}

// StatesResponse echoes the "states" form field
type StatesResponse struct {
	States []string `json:"states"`
}

// @Summary Hello world
// @Tags index
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hello": "world"})
}

// @Summary Echo form states
// @Description Parses a form-encoded body and returns the values of its "states" field
// @Tags index
// @Accept x-www-form-urlencoded
// @Produce json
// @Param states formData []string false "States" collectionFormat(multi)
// @Success 200 {object} StatesResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 415 {object} middleware.ErrorResponse
// @Router / [post]
func (h *IndexHandler) IndexPost(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(services.NewBadRequestError("Error Parsing Form Body"))
		return
	}

	states, err := h.formService.States(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, StatesResponse{States: states})
}
