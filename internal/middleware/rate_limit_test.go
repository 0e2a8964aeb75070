package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// unreachableRedis points at a port nothing listens on
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(), RateLimitConfig{KeyPrefix: "notes"}, logger.NewNop())

	router := gin.New()
	router.GET("/",
		func(c *gin.Context) { c.Set(string(utils.TenantSlugKey), "acme") },
		m.GlobalRateLimit(),
		m.TenantRateLimit(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_TenantRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(), RateLimitConfig{}, logger.NewNop())

	router := gin.New()
	router.GET("/", m.TenantRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit_Keys(t *testing.T) {
	prefixed := NewRateLimitMiddleware(nil, RateLimitConfig{KeyPrefix: "notes"}, logger.NewNop())
	bare := NewRateLimitMiddleware(nil, RateLimitConfig{}, logger.NewNop())

	assert.Equal(t, "notes:rate_limit:tenant:acme", prefixed.key("tenant", "acme"))
	assert.Equal(t, "rate_limit:global:10.0.0.1", bare.key("global", "10.0.0.1"))
	assert.Equal(t, defaultTenantRateLimit, bare.config.TenantLimit)
	assert.Equal(t, defaultGlobalRateLimit, bare.config.GlobalLimit)
}
