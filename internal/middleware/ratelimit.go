package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// RateLimit counts requests per client IP in fixed windows kept in Redis.
// A nil client disables the limit; Redis failures let the request through.
func RateLimit(
	client *redis.Client,
	name string,
	limit int,
	window time.Duration,
	log *zap.Logger,
) gin.HandlerFunc {

	if client == nil || limit <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		now := time.Now()
		bucket := now.Truncate(window).Unix()
		key := fmt.Sprintf("ratelimit:%s:%s:%d", name, c.ClientIP(), bucket)

		ctx := c.Request.Context()
		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("rate limit unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		count := incr.Val()
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			reset := time.Unix(bucket, 0).Add(window).Sub(now)
			c.Header("Retry-After", strconv.Itoa(int(reset.Seconds())+1))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
