package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/service"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         fmt.Errorf("%w: credit limit must not be negative", service.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "entity not found",
			err:         service.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "user not found",
		},
		{
			name:        "wrapped conflict",
			err:         fmt.Errorf("assign: %w", service.ErrUserRoleExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "role already assigned to user",
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("query customers: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: unavailableErrorMessage,
		},
		{
			name:        "connection exception",
			err:         &pgconn.PgError{Code: "08006", Message: "connection failure"},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: unavailableErrorMessage,
		},
		{
			name:        "constraint violation is not transient",
			err:         &pgconn.PgError{Code: "23514", Message: "check constraint"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "unknown",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			c, w := newTestContext(http.MethodGet, "/", nil, caller(uuid.New()))

			// Act
			newTestBase().respondError(c, tt.err)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			response := decode[dto.ErrorResponse](t, w)
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMessage, response.Message)
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}
