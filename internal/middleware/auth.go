package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/pkg/response"
)

// InternalAuth guards operator endpoints with "Authorization: <scheme> <key>".
// With no key configured every request is refused.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if m.internalKey == "" {
			m.l.Warnf(ctx, "middleware.InternalAuth: internal key not configured, refusing %s", c.FullPath())
			response.Forbidden(c)
			return
		}

		expected := m.authScheme + " " + m.internalKey
		got := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			m.l.Infof(ctx, "middleware.InternalAuth: unauthorized access attempt to %s", c.FullPath())
			response.Forbidden(c)
			return
		}

		c.Next()
	}
}
