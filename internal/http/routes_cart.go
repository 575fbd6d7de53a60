package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/middleware"
)

// CartRoutes handles session, cart, delivery and checkout route registration.
type CartRoutes struct {
	handler *Handler
}

var (
	_ PublicRouteGroup    = (*CartRoutes)(nil)
	_ ProtectedRouteGroup = (*CartRoutes)(nil)
)

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(handler *Handler) *CartRoutes {
	return &CartRoutes{handler: handler}
}

// RegisterPublicRoutes registers the routes reachable without a session token.
func (r *CartRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/session", r.handler.CreateSession)
}

// RegisterProtectedRoutes registers the session-scoped routes. rg must
// already carry the session middleware.
func (r *CartRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.DELETE("/session", r.handler.DeleteSession)

	cart := rg.Group("/cart")
	{
		cart.GET("", r.handler.GetCart)
		cart.PUT("", r.handler.ReloadCart)
		cart.POST("/items", r.handler.AddItem)
		cart.POST("/items/:id/adjust", r.handler.AdjustQuantity)
		cart.DELETE("/items/:id", r.handler.DeleteItem)
		cart.PUT("/items/:id/selection", r.handler.ToggleLine)
		cart.PUT("/selection", r.handler.ToggleAll)
	}

	delivery := rg.Group("/delivery")
	{
		delivery.GET("", r.handler.GetDelivery)
		delivery.POST("/open", r.handler.OpenDelivery)
		delivery.POST("/method", r.handler.SelectDeliveryMethod)
		delivery.PUT("/form", r.handler.UpdateDeliveryForm)
		delivery.POST("/confirm", r.handler.ConfirmDelivery)
		delivery.POST("/cancel", r.handler.CancelDelivery)
	}

	rg.POST("/checkout", r.handler.Checkout)
}

// SessionGroup returns a group guarded by the session token, with per-session
// rate limiting, the request deadline and idempotent replays applied.
func (r *CartRoutes) SessionGroup(rg *gin.RouterGroup, cfg *RouterConfig, stack *routerStack) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.SessionAuth(cfg.Tokens, cfg.Sessions))

	if cfg.SessionRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.RateWindow)
		stack.onStop(limiter.Stop)
		protected.Use(limiter.Limit("session", middleware.SessionKeyOrIP))
	}
	if cfg.RequestTimeout > 0 {
		protected.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.NewIdempotencyConfig(cfg.IdempotencyTTL, cfg.IdempotencyMaxEntries)
		stack.onStop(idempotencyCfg.Stop)
		protected.Use(middleware.Idempotency(idempotencyCfg))
	}
	return protected
}
