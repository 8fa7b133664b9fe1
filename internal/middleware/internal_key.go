package middleware

import (
	"retain-api/pkg/encrypter"
	"retain-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const internalKeyHeader = "X-Internal-Key"

// InternalKey returns a middleware that guards operator-only routes. The
// caller must present the shared internal key; it is compared against the
// configured bcrypt hash.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if key == "" {
			m.l.Warnf(c.Request.Context(), "Missing internal key header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !encrypter.CheckPasswordHash(key, m.internalKeyHash) {
			m.l.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
