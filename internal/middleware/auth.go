package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authorization header is required"))
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid authorization header format"))
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(bearerToken[1], &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid or expired token"))
			return
		}

		// Handlers read these through the request context built by RequestCtx
		tenantID, _ := claims[string(utils.TenantIDKey)].(string)
		userID, _ := claims[string(utils.UserIDKey)].(string)
		c.Set(string(utils.TenantIDKey), tenantID)
		c.Set(string(utils.UserIDKey), userID)
		c.Set(string(utils.RolesKey), utils.GetRolesFromClaims(claims))
		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

// RequireRole checks if the caller has the required role
func (m *AuthMiddleware) RequireRole(role domain.Role) gin.HandlerFunc {
	return m.RequireAnyRole(role)
}

// RequireAnyRole lets the request through when the caller holds at least one
// of roles.
func (m *AuthMiddleware) RequireAnyRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get(string(utils.ClaimsKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("No authentication found"))
			return
		}

		claimsMap, ok := claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("Invalid claims type"))
			return
		}

		if !domain.HasAnyRole(utils.GetRolesFromClaims(claimsMap), roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) GenerateToken(userID, tenantID string, roles []string) (string, error) {
	return GenerateToken(m.config.JWTSecretKey, time.Duration(m.config.JWTExpirationHours)*time.Hour, userID, tenantID, roles)
}

// GenerateToken signs an HS256 token with the claims JWTAuth reads.
func GenerateToken(secret string, ttl time.Duration, userID, tenantID string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   userID,
		"tenant_id": tenantID,
		"roles":     roles,
		"exp":       now.Add(ttl).Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
