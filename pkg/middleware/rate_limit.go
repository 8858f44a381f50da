package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKey buckets a client into one counter per scope, not per route:
// every endpoint sharing a scope draws from the same budget.
func rateLimitKey(scope, clientIP string) string {
	return fmt.Sprintf("rate_limit:%s:%s", scope, clientIP)
}

// RateLimitMiddleware caps requests per client IP within a rolling window,
// counted in Redis so the limit holds across instances. All routes mounted
// with the same scope share one counter.
func RateLimitMiddleware(redisClient *redis.Client, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(scope, c.ClientIP())

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
