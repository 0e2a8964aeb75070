package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

const (
	rateLimitWindow = time.Minute

	defaultTenantRateLimit = 1000
	defaultGlobalRateLimit = 10000
)

type RateLimitConfig struct {
	KeyPrefix   string
	TenantLimit int
	GlobalLimit int
}

// RateLimitMiddleware keeps fixed one-minute windows in Redis. A window opens
// on the first hit and later hits do not extend it. It fails open when Redis
// cannot be reached.
type RateLimitMiddleware struct {
	redis  *redis.Client
	config RateLimitConfig
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config RateLimitConfig, logger *logger.Logger) *RateLimitMiddleware {
	if config.TenantLimit <= 0 {
		config.TenantLimit = defaultTenantRateLimit
	}
	if config.GlobalLimit <= 0 {
		config.GlobalLimit = defaultGlobalRateLimit
	}
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit limits requests per tenant; it must run after ResolveTenant
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantSlug := c.GetString(string(utils.TenantSlugKey))
		if tenantSlug == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "tenant required for rate limiting", Code: dto.CodeUnauthenticated})
			return
		}

		m.enforce(c, m.key("tenant", tenantSlug), m.config.TenantLimit, "Rate limit exceeded")
	}
}

// GlobalRateLimit limits requests per client IP
func (m *RateLimitMiddleware) GlobalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, m.key("global", c.ClientIP()), m.config.GlobalLimit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) key(scope, id string) string {
	if m.config.KeyPrefix == "" {
		return fmt.Sprintf("rate_limit:%s:%s", scope, id)
	}
	return fmt.Sprintf("%s:rate_limit:%s:%s", m.config.KeyPrefix, scope, id)
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Reset", reset)

	if current >= limit {
		c.Header("X-RateLimit-Remaining", "0")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error{Error: message, Code: dto.CodeRateLimited})
		return
	}

	if err := m.increment(ctx, key); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limit-(current+1), 0)))
	c.Next()
}

func (m *RateLimitMiddleware) increment(ctx context.Context, key string) error {
	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	// NX keeps the expiry set by the hit that opened the window
	pipe.ExpireNX(ctx, key, rateLimitWindow)
	_, err := pipe.Exec(ctx)
	return err
}
