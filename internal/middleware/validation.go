package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"helloworld-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Content types accepted by routes
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// ContentTypes rejects request bodies whose media type is not in allowed.
// A request without a Content-Type header is treated as JSON.
func ContentTypes(allowed ...string) gin.HandlerFunc {
	if len(allowed) == 0 {
		allowed = []string{ContentTypeJSON}
	}

	return func(c *gin.Context) {
		// Skip validation for methods without a body
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		mainType := mediaType(c.GetHeader("Content-Type"))
		for _, allowedType := range allowed {
			if mainType == allowedType {
				c.Next()
				return
			}
		}

		_ = c.Error(services.NewUnsupportedMediaTypeError(mainType))
		c.Abort()
	}
}

// mediaType extracts the main content type, ignoring charset, boundary, etc.
func mediaType(contentType string) string {
	if contentType == "" {
		return ContentTypeJSON
	}
	mainType := strings.Split(contentType, ";")[0]
	return strings.ToLower(strings.TrimSpace(mainType))
}

// RateLimiter implements rate limiting middleware. A non-positive rate disables it.
func RateLimiter(requestsPerSecond float64, burstSize int) gin.HandlerFunc {
	if requestsPerSecond <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logrus.WithFields(logrus.Fields{
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
				"user_agent": c.Request.UserAgent(),
				"request_id": c.GetString(RequestIDKey),
			}).Warn("Rate limit exceeded")

			_ = c.Error(services.NewTooManyRequestsError(
				fmt.Sprintf("Too many requests. Limit: %.1f requests per second", requestsPerSecond),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}
