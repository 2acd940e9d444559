package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/wsawebmaster/delivery/internal/metrics"
	"github.com/wsawebmaster/delivery/internal/middleware"
	"github.com/wsawebmaster/delivery/internal/service"
	"github.com/wsawebmaster/delivery/internal/storefront"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	// OrderRateLimit caps order submissions per session and window. Zero disables it.
	OrderRateLimit    int
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	Sessions          *storefront.SessionStore
	Session           middleware.SessionConfig
	LoggingService    service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         120,
		RateWindow:        time.Minute,
		OrderRateLimit:    10,
		RequestTimeout:    15 * time.Second,
		EnableIdempotency: true,
		Session:           middleware.SessionConfig{TTL: storefront.DefaultSessionTTL},
	}
}

// NewRouter creates the storefront router. A nil cfg.Sessions gets a fresh store.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	if cfg.Sessions == nil {
		cfg.Sessions = storefront.NewSessionStore(cfg.Session.TTL)
	}

	router := gin.New()
	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	if handler == nil {
		return router
	}

	// the page and the socket need the session but not the API timeout
	handler.RegisterPageRoutes(router.Group("", middleware.Session(cfg.Sessions, cfg.Session)))

	api := router.Group("/api", middleware.Session(cfg.Sessions, cfg.Session))
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	handler.RegisterRoutes(api, orderGuards(&cfg))

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "X-Requested-With", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Idempotency-Replayed", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/ws"),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// orderGuards builds the handlers placed in front of order submission.
func orderGuards(cfg *RouterConfig) RouteGuards {
	var guards RouteGuards
	if cfg.OrderRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.OrderRateLimit, cfg.RateWindow)
		guards.Order = append(guards.Order, limiter.SessionRateLimit())
	}
	if cfg.EnableIdempotency {
		guards.Order = append(guards.Order, middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	return guards
}
