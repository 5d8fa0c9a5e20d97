package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// defaultAllowHeaders are always allowed on CORS-enabled routes, on top of
// whatever a route's CORSConfig adds.
var defaultAllowHeaders = []string{
	"Authorization",
	"Content-Type",
	"X-Amz-Date",
	"X-Amz-Security-Token",
	"X-Api-Key",
}

// ErrorResponse is the body rendered for every error
type ErrorResponse struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
	Stack   string `json:"Stack,omitempty"`
}

// NewErrorResponse builds the response body for a view error
func NewErrorResponse(err *services.ViewError) ErrorResponse {
	return ErrorResponse{
		Code:    err.Code,
		Message: err.Error(),
	}
}

// CORSConfig describes the CORS headers attached to a single route
type CORSConfig struct {
	AllowOrigin      string
	AllowHeaders     []string
	ExposeHeaders    []string
	MaxAge           int
	AllowCredentials bool
}

// DefaultCORSConfig allows any origin with the default header set
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{AllowOrigin: "*"}
}

// Headers returns the Access-Control-* response headers for the config
func (cfg CORSConfig) Headers() map[string]string {
	origin := cfg.AllowOrigin
	if origin == "" {
		origin = "*"
	}

	headers := map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Headers": cfg.allowedHeaders(),
	}
	if len(cfg.ExposeHeaders) > 0 {
		headers["Access-Control-Expose-Headers"] = strings.Join(cfg.ExposeHeaders, ",")
	}
	if cfg.MaxAge > 0 {
		headers["Access-Control-Max-Age"] = strconv.Itoa(cfg.MaxAge)
	}
	if cfg.AllowCredentials {
		headers["Access-Control-Allow-Credentials"] = "true"
	}
	return headers
}

// allowedHeaders merges the route's headers with the defaults, sorted and de-duplicated
func (cfg CORSConfig) allowedHeaders() string {
	set := make(map[string]struct{}, len(defaultAllowHeaders)+len(cfg.AllowHeaders))
	for _, h := range defaultAllowHeaders {
		set[h] = struct{}{}
	}
	for _, h := range cfg.AllowHeaders {
		set[h] = struct{}{}
	}

	headers := make([]string, 0, len(set))
	for h := range set {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	return strings.Join(headers, ",")
}

// CORS attaches the route's CORS headers to its responses
func CORS(cfg CORSConfig) gin.HandlerFunc {
	headers := cfg.Headers()
	return func(c *gin.Context) {
		for k, v := range headers {
			c.Header(k, v)
		}
		c.Next()
	}
}

// Preflight answers an OPTIONS request for a CORS-enabled route
func Preflight(cfg CORSConfig, methods ...string) gin.HandlerFunc {
	headers := cfg.Headers()

	allowed := append([]string(nil), methods...)
	allowed = append(allowed, http.MethodOptions)
	sort.Strings(allowed)
	allowMethods := strings.Join(allowed, ",")

	return func(c *gin.Context) {
		for k, v := range headers {
			c.Header(k, v)
		}
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Status(http.StatusOK)
	}
}

// ErrorHandler renders errors attached to the context by handlers.
// View errors keep their status; anything else is an internal error whose
// details are only shown in debug mode.
func ErrorHandler(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		viewErr, ok := services.AsViewError(err)
		if !ok {
			message := "An internal server error occurred."
			if debugMode {
				message = err.Error()
			}
			viewErr = services.NewInternalServerError(message, err)
		}

		fields := logrus.Fields{
			"request_id":  c.GetString(RequestIDKey),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": viewErr.StatusCode,
			"error":       err.Error(),
		}
		if viewErr.StatusCode >= http.StatusInternalServerError {
			logrus.WithFields(fields).Error("Request error")
		} else {
			logrus.WithFields(fields).Debug("Request error")
		}

		c.JSON(viewErr.StatusCode, NewErrorResponse(viewErr))
	}
}

// Recovery turns panics into 500 responses. In debug mode the panic value and
// stack are included in the body.
func Recovery(debugMode bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		stack := string(debug.Stack())

		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
			"stack":      stack,
		}).Error("Recovered from panic")

		resp := ErrorResponse{
			Code:    services.CodeInternalServer,
			Message: services.CodeInternalServer + ": An internal server error occurred.",
		}
		if debugMode {
			resp.Message = fmt.Sprintf("%s: %v", services.CodeInternalServer, recovered)
			resp.Stack = stack
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
