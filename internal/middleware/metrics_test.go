package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/saas-platform-api/internal/metrics"
)

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/customers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	before := testutil.ToFloat64(metrics.HTTPRequests("GET", "/customers/:id", "200"))

	// Act
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customers/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customers/def", nil))

	// Assert
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.HTTPRequests("GET", "/customers/:id", "200")))
}
