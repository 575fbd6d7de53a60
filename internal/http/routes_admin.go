package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/middleware"
)

// AdminRoutes registers the operator routes. They are guarded by API keys
// and are not registered when no key is configured.
type AdminRoutes struct {
	handler *AuditLogHandler
}

var _ ProtectedRouteGroup = (*AdminRoutes)(nil)

// NewAdminRoutes creates a new AdminRoutes instance.
func NewAdminRoutes(handler *AuditLogHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the admin routes.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if len(cfg.APIKeys) == 0 {
		return
	}
	admin := rg.Group("/admin", middleware.APIKeyAuth(cfg.APIKeys))
	admin.GET("/audit-logs", r.handler.ListAuditLogs)
}
