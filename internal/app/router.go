// Package app provides router configuration.
package app

import (
	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/http"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/guttosm/cart-sync/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	auditLogger *middleware.AsyncLogger,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if services.UpstreamBreaker != nil {
		healthHandler.RegisterCircuitBreaker("upstream_cart", services.UpstreamBreaker)
	}

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.CheckoutCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_checkout_states", dbComponents.CheckoutCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.HealthCheck))
		}
	}
	if services.Sessions != nil {
		healthHandler.ReportSessions(services.Sessions.Count)
	}

	routerCfg := http.RouterConfig{
		RateLimit:             cfg.Server.RateLimit,
		RateWindow:            cfg.Server.RateWindow,
		SessionRateLimit:      cfg.Server.SessionRateLimit,
		APIKeys:               cfg.Server.APIKeys,
		EnableIdempotency:     cfg.Idempotency.Enabled,
		IdempotencyTTL:        cfg.Idempotency.TTL,
		IdempotencyMaxEntries: cfg.Idempotency.MaxEntries,
		RequestTimeout:        cfg.Server.RequestTimeout,
		CORSOrigins:           cfg.Server.CORSOrigins,
		SwaggerUser:           cfg.Server.SwaggerUser,
		SwaggerPass:           cfg.Server.SwaggerPass,
		Sessions:              services.Sessions,
		Tokens:                services.Tokens,
		LoggingService:        loggingService,
		AuditLogger:           auditLogger,
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Sessions, services.Tokens, auditLogger),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
