package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/infrastructure/ratelimit"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

// PublicRateLimit throttles the unauthenticated citizen endpoints per client
// IP. A limiter failure lets the request through; blocking all citizens on a
// Redis outage would be worse than briefly losing the limit.
func PublicRateLimit(limiter ratelimit.RateLimiter, limit int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("public:%s", c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Çok fazla istek gönderdiniz. Lütfen daha sonra tekrar deneyin.")
			c.Abort()
			return
		}

		c.Next()
	}
}
