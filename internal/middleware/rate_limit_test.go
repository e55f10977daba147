package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

// unreachableRedis fails every command immediately.
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTenantRateLimit_RequiresTenant(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(t), &config.Config{DefaultRateLimit: 10}, logger.NewNop())
	router := gin.New()
	router.GET("/", m.TenantRateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(t), &config.Config{DefaultRateLimit: 10}, logger.NewNop())
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.Set(string(utils.TenantIDKey), "tenant-1")
	}, m.TenantRateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestGlobalRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(t), &config.Config{}, logger.NewNop())
	router := gin.New()
	router.GET("/", m.GlobalRateLimit(5), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
}
