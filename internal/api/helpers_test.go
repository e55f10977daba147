package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

func newTestBase() *BaseHandler {
	return NewBaseHandler(logger.NewNop(), dto.DefaultPagingLimits())
}

// caller builds the claims JWTAuth would have stored for a token.
func caller(tenantID uuid.UUID, roles ...string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":   uuid.NewString(),
		"tenant_id": tenantID.String(),
		"roles":     roles,
	}
}

// newTestContext prepares a gin context as if the request had passed the auth
// middleware with claims. A nil body sends no payload.
func newTestContext(method, target string, body any, claims jwt.MapClaims, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	c.Request, _ = http.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	if claims != nil {
		tenantID, _ := claims[string(utils.TenantIDKey)].(string)
		c.Set(string(utils.TenantIDKey), tenantID)
		c.Set(string(utils.ClaimsKey), claims)
	}
	return c, w
}

func idParam(id uuid.UUID) gin.Param {
	return gin.Param{Key: "id", Value: id.String()}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
