// Package app provides router configuration.
package app

import (
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/http"
	"github.com/wsawebmaster/delivery/internal/middleware"
	"github.com/wsawebmaster/delivery/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the storefront handler, the health checks and the router
// configuration. db may be nil, in which case audit and request logs are dropped.
func InitializeRouter(sf *StorefrontComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	if db != nil {
		loggingService = db.LoggingService
	}

	handler := http.NewHandler(sf.Controller, sf.Renderer,
		http.WithHub(sf.Hub),
		http.WithLoggingService(loggingService),
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("viacep", sf.DirectoryBreaker)
	if db != nil {
		healthHandler.RegisterChecker("mongodb", db.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		OrderRateLimit:    cfg.Server.OrderRateLimit,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Sessions:          sf.Sessions,
		Session: middleware.SessionConfig{
			TTL:    cfg.Storefront.SessionTTL,
			Secure: cfg.Storefront.SecureCookie,
		},
		LoggingService: loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
