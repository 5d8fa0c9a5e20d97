package handlers

import (
	"errors"
	"net/http"

	"helloworld-api/internal/models"
	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ObjectHandler serves the key/value object store
type ObjectHandler struct {
	objectService services.ObjectService
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(objectService services.ObjectService) *ObjectHandler {
	return &ObjectHandler{objectService: objectService}
}

// @Summary Read an object
// @Description Returns {key: value} for a stored object
// @Tags objects
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} middleware.ErrorResponse
// @Router /objects/{key} [get]
func (h *ObjectHandler) GetObject(c *gin.Context) {
	key := c.Param("key")

	doc, err := h.objectService.Get(c.Request.Context(), key)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, map[string]models.Document{key: doc})
}

// @Summary Store an object
// @Description Stores the JSON request body under key, replacing any previous value
// @Tags objects
// @Accept json
// @Produce json
// @Param key path string true "Object key"
// @Param object body interface{} true "Any JSON value"
// @Success 200 {object} interface{} "null"
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 415 {object} middleware.ErrorResponse
// @Router /objects/{key} [put]
func (h *ObjectHandler) PutObject(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(services.NewBadRequestError("Error Parsing JSON"))
		return
	}

	doc, err := models.ParseDocument(body)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDocument) {
			_ = c.Error(services.NewBadRequestError("Error Parsing JSON"))
			return
		}
		_ = c.Error(err)
		return
	}

	if err := h.objectService.Put(c.Request.Context(), c.Param("key"), doc); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, nil)
}
