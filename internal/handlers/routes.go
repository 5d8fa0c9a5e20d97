package handlers

import (
	"net/http"

	"helloworld-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Handlers *Handlers
	AppName  string
	Debug    bool

	RateLimit float64
	Burst     int

	// Metrics is nil when metrics are disabled
	Metrics     *middleware.MetricsBuilder
	MetricsPath string
}

// NewRouter builds the gin engine serving the application
func NewRouter(config *RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.RedirectTrailingSlash = false

	SetupMiddleware(router, config)
	SetupRoutes(router, config)

	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	h := config.Handlers

	router.GET("/", h.Index.Index)
	router.POST("/", middleware.ContentTypes(middleware.ContentTypeForm), h.Index.IndexPost)

	// Custom CORS route and its preflight
	customCORS := CustomCORSConfig()
	router.GET("/custom_cors", middleware.CORS(customCORS), h.CORS.CustomCORS)
	router.OPTIONS("/custom_cors", middleware.Preflight(customCORS, http.MethodGet))

	router.GET("/cors_multiple_origins", h.CORS.MultipleOrigins)
	router.GET("/introspect", h.Introspect.Introspect)
	router.GET("/cities/:city", h.City.StateOfCity)
	router.PUT("/resource/:value", middleware.ContentTypes(middleware.ContentTypeJSON), h.Resource.PutResource)

	objects := router.Group("/objects")
	{
		objects.GET("/:key", h.Object.GetObject)
		objects.PUT("/:key", middleware.ContentTypes(middleware.ContentTypeJSON), h.Object.PutObject)
	}

	// Health check endpoint
	router.GET("/health", h.Health.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if config.Metrics != nil {
		path := config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, config.Metrics.Handler())
	}

	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *RouterConfig) {
	router.Use(middleware.Recovery(config.Debug))

	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// Structured logging
	router.Use(middleware.StructuredLogger(config.AppName))

	if config.Metrics != nil {
		router.Use(config.Metrics.Build())
	}

	// Error tracking and rendering
	router.Use(middleware.ErrorTracker())
	router.Use(middleware.ErrorHandler(config.Debug))

	// Rate limiting, off when no rate is configured
	router.Use(middleware.RateLimiter(config.RateLimit, config.Burst))

	// Audit logging of object writes
	router.Use(middleware.AuditLogger())
}
