package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIP resolves the caller's address once per request and exposes
// it through both the gin context and the request context.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.ExtractClientIP(c)

		c.Set("client_ip", ip)

		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, ip)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClientIPFromContext returns the resolved client IP, or "" when the
// middleware did not run.
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
