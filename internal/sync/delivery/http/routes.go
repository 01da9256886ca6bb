package http

import (
	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/middleware"
)

// RegisterRoutes maps the Notion webhook. Only POST is registered, so other
// methods get 405 from the engine.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/webhook/notion", mw.RateLimit(), mw.NotionSignature(), h.Webhook)
}
