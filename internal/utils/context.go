package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
	UserIDKey   ContextKey = "user_id"
	RolesKey    ContextKey = "roles"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrInvalidClaimsType   = errors.New("invalid claims type")
	ErrNoTenantIDInClaims  = errors.New("no tenant_id found in claims")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
	ErrNoUserIDInClaims    = errors.New("no user_id found in claims")
)

func claimsFromContext(c context.Context) (jwt.MapClaims, error) {
	raw := c.Value(ClaimsKey)
	if raw == nil {
		return nil, ErrNoClaimsInContext
	}
	claims, ok := raw.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaimsType
	}
	return claims, nil
}

func GetTenantIDFromContext(c context.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}

	tenantID, exists := claims[string(TenantIDKey)]
	if !exists {
		return "", ErrNoTenantIDInClaims
	}

	tenantIDStr, ok := tenantID.(string)
	if !ok {
		return "", ErrInvalidTenantIDType
	}

	return tenantIDStr, nil
}

// GetUserIDFromContext returns the caller's user id, or nil when the token
// carries none or it is not a UUID.
func GetUserIDFromContext(c context.Context) *uuid.UUID {
	claims, err := claimsFromContext(c)
	if err != nil {
		return nil
	}

	raw, ok := claims[string(UserIDKey)].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// GetRolesFromClaims reads the roles claim. JSON decoding yields []any, tokens
// built in-process may carry []string.
func GetRolesFromClaims(claims jwt.MapClaims) []string {
	switch roles := claims[string(RolesKey)].(type) {
	case []string:
		return roles
	case []any:
		out := make([]string, 0, len(roles))
		for _, role := range roles {
			if s, ok := role.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func GetRolesFromContext(c context.Context) []string {
	claims, err := claimsFromContext(c)
	if err != nil {
		return nil
	}
	return GetRolesFromClaims(claims)
}
