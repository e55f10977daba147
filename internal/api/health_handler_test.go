package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/saas-platform-api/internal/mocks"
)

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		// Arrange
		db := mocks.NewPinger(t)
		db.On("Ping", mock.Anything).Return(nil)
		c, w := newTestContext(http.MethodGet, "/health", nil, nil)

		// Act
		NewHealthHandler(newTestBase(), db).Health(c)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		// Arrange
		db := mocks.NewPinger(t)
		db.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))
		c, w := newTestContext(http.MethodGet, "/health", nil, nil)

		// Act
		NewHealthHandler(newTestBase(), db).Health(c)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "refused")
	})
}
