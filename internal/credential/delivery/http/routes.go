package http

import (
	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/middleware"
)

// RegisterRoutes maps the authorization bootstrap endpoints. The consent URL
// is operator-only; the callback is hit by the browser redirect.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.GET("/api/auth-url", mw.InternalAuth(), h.AuthURL)
	r.GET("/oauth2callback", h.Callback)
}
