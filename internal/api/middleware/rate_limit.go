package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/pkg/redis"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// RateLimit caps requests per client IP and route within a sliding window.
// Without Redis the limiter is disabled; a Redis error lets the request
// through rather than taking the API down with the cache.
func RateLimit(rdb *redis.Client, logger *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, 429, 10004, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
