package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/guttosm/cart-sync/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit             int
	RateWindow            time.Duration
	SessionRateLimit      int
	APIKeys               []string
	EnableIdempotency     bool
	IdempotencyTTL        time.Duration
	IdempotencyMaxEntries int
	RequestTimeout        time.Duration
	CORSOrigins           []string
	SwaggerUser           string
	SwaggerPass           string
	Sessions              service.SessionManager
	Tokens                service.SessionTokenService
	LoggingService        service.LoggingService
	AuditLogger           *middleware.AsyncLogger
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		SessionRateLimit:  60,
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.IdempotencyKeyTTL,
		RequestTimeout:    30 * time.Second,
	}
}

// Router is the configured gin engine plus the background resources its
// middleware owns (rate limiter sweeps, the idempotency cache).
type Router struct {
	*gin.Engine
	stack *routerStack
}

// Stop releases the middleware background resources. Safe to call more than once.
func (r *Router) Stop() {
	r.stack.stop()
}

type routerStack struct {
	once  sync.Once
	stops []func()
}

func (s *routerStack) onStop(fn func()) {
	s.stops = append(s.stops, fn)
}

func (s *routerStack) stop() {
	s.once.Do(func() {
		for _, fn := range s.stops {
			fn()
		}
	})
}

// NewRouter creates and configures the Gin router for the cart service.
// The session routes are only registered when cfg carries a session manager
// and a token service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	router := &Router{Engine: gin.New(), stack: &routerStack{}}

	configureGlobalMiddleware(router.Engine, &cfg, router.stack)

	registerInfrastructureRoutes(router.Engine, healthHandler, &cfg)

	api := router.Group("/api")
	if handler != nil && cfg.Sessions != nil && cfg.Tokens != nil {
		cartRoutes := NewCartRoutes(handler)
		cartRoutes.RegisterPublicRoutes(api)
		protected := cartRoutes.SessionGroup(api, &cfg, router.stack)
		cartRoutes.RegisterProtectedRoutes(protected, &cfg)
	}
	if cfg.LoggingService != nil {
		NewAdminRoutes(NewAuditLogHandler(cfg.LoggingService)).RegisterProtectedRoutes(api, &cfg)
	}

	return router
}

var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language",
			"Authorization", "Cache-Control", "X-Requested-With",
			middleware.APIKeyHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
		},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// configureGlobalMiddleware installs the chain every route goes through.
// Probe and scrape endpoints stay out of the request log.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig, stack *routerStack) {
	router.Use(
		cors.New(corsConfig(cfg.CORSOrigins)),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.AuditLogger, "/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		stack.onStop(limiter.Stop)
		router.Use(limiter.Limit("ip", middleware.ClientIPKey))
	}
}

// registerInfrastructureRoutes mounts the probes, /metrics and the swagger UI.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	swagger := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", swagger)
	} else {
		router.GET("/swagger/*any", swagger)
	}
}
