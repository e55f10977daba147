package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

const (
	rateLimitWindow        = time.Minute
	defaultTenantRateLimit = 1000
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting. It runs after JWTAuth.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetString(string(utils.TenantIDKey))
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Tenant ID required for rate limiting"))
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = defaultTenantRateLimit
		}
		m.enforce(c, fmt.Sprintf("rate_limit:tenant:%s", tenantID), limit, "Rate limit exceeded")
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

// enforce counts the request in a fixed one-minute window. Redis failures let
// the request through.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()

	pipe := m.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis error in rate limiting", err, zap.String("key", key))
		c.Next()
		return
	}

	current := int(incr.Val())
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Reset", reset)

	if current > limit {
		c.Header("X-RateLimit-Remaining", "0")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail(message))
		return
	}

	c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-current))
	c.Next()
}
