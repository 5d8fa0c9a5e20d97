package handlers

import (
	"fmt"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
)

// NoRoute reports requests for paths no route matches
func NoRoute(c *gin.Context) {
	_ = c.Error(services.NewNotFoundError(
		fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path), nil,
	))
}

// NoMethod reports requests whose path matches but whose method does not
func NoMethod(c *gin.Context) {
	_ = c.Error(services.NewMethodNotAllowedError(c.Request.Method))
}
