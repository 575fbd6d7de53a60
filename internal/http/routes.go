package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes that need no credentials, such as
// starting a cart session.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind a credential: a session token
// for shopper routes, an API key for admin routes. Implementations attach
// their own guard or expect rg to carry one.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
