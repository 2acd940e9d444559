package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGuards are extra handlers placed in front of sensitive routes.
type RouteGuards struct {
	// Order runs before order submission, typically idempotency and a per-session limit.
	Order []gin.HandlerFunc
}

// RouteGroup registers JSON API routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, guards RouteGuards)
}

// PageRouteGroup registers routes served outside the API group.
type PageRouteGroup interface {
	RegisterPageRoutes(rg *gin.RouterGroup)
}

var (
	_ RouteGroup     = (*Handler)(nil)
	_ PageRouteGroup = (*Handler)(nil)
)
