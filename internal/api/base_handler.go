package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

const tenantOverrideParam = "tenantId"

type BaseHandler struct {
	logger *logger.Logger
	paging dto.PagingLimits
}

func NewBaseHandler(log *logger.Logger, paging dto.PagingLimits) *BaseHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &BaseHandler{logger: log, paging: paging}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// tenantScope resolves the tenant a request acts on. It is the token's
// tenant_id claim; admins may name another tenant with ?tenantId=. On failure
// the response has already been written.
func (h *BaseHandler) tenantScope(c *gin.Context) (uuid.UUID, bool) {
	if override := c.Query(tenantOverrideParam); override != "" && domain.HasRole(callerRoles(c), domain.RoleAdmin) {
		tenantID, err := uuid.Parse(override)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", "tenantId must be a valid UUID"))
			return uuid.Nil, false
		}
		return tenantID, true
	}

	tenantID, err := uuid.Parse(c.GetString(string(utils.TenantIDKey)))
	if err != nil {
		c.JSON(http.StatusForbidden, dto.Fail("Token carries no valid tenant scope"))
		return uuid.Nil, false
	}
	return tenantID, true
}

// pathID parses a UUID path parameter, answering 400 when it is malformed.
func (h *BaseHandler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *BaseHandler) pageRequest(c *gin.Context) (domain.PageRequest, bool) {
	page, err := h.paging.Parse(c.Query("pageNumber"), c.Query("pageSize"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", dto.ValidationMessages(err)...))
		return domain.PageRequest{}, false
	}
	return page, true
}

// bindJSON binds and validates the body, answering 400 with per-field
// messages when it is rejected.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", dto.ValidationMessages(err)...))
		return false
	}
	return true
}

// requiredQuery reads a query parameter that must be present.
func (h *BaseHandler) requiredQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", name+" is required"))
		return "", false
	}
	return value, true
}

func callerRoles(c *gin.Context) []string {
	claims, ok := c.Get(string(utils.ClaimsKey))
	if !ok {
		return nil
	}
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return utils.GetRolesFromClaims(mapClaims)
}

func parseStatus(c *gin.Context) (domain.Status, bool) {
	raw := c.Query("status")
	if raw == "" {
		return "", true
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", "status must be one of: Active, Inactive, Blocked"))
		return "", false
	}
	return status, true
}
