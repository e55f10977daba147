package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

//go:generate mockery --name UserRoleService --output ../mocks
type UserRoleService interface {
	List(ctx context.Context, tenantID uuid.UUID, filter domain.UserRoleFilter) (*domain.Page[dto.UserRoleResponse], error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.UserRoleResponse, error)
	Assign(ctx context.Context, tenantID uuid.UUID, req dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error)
	Remove(ctx context.Context, tenantID, id uuid.UUID) error
}

type UserRoleHandler struct {
	*BaseHandler
	service UserRoleService
}

func NewUserRoleHandler(base *BaseHandler, service UserRoleService) *UserRoleHandler {
	return &UserRoleHandler{BaseHandler: base, service: service}
}

// ListUserRoles godoc
// @Summary List a user's role assignments
// @Tags user-roles
// @Produce json
// @Param userId query string true "User ID"
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.PagedResponse[dto.UserRoleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user-roles [get]
func (h *UserRoleHandler) ListUserRoles(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	rawUserID, ok := h.requiredQuery(c, "userId")
	if !ok {
		return
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", "userId must be a valid UUID"))
		return
	}
	page, ok := h.pageRequest(c)
	if !ok {
		return
	}

	result, err := h.service.List(h.RequestCtx(c), tenantID, domain.UserRoleFilter{PageRequest: page, UserID: userID})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(result.Items, result.PageNumber, result.PageSize, result.TotalCount, "User roles retrieved successfully"))
}

// GetUserRole godoc
// @Summary Get role assignment
// @Tags user-roles
// @Produce json
// @Param id path string true "User role ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[dto.UserRoleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user-roles/{id} [get]
func (h *UserRoleHandler) GetUserRole(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.GetByID(h.RequestCtx(c), tenantID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(role, "User role retrieved successfully"))
}

// AssignUserRole godoc
// @Summary Assign a role to a user
// @Tags user-roles
// @Accept json
// @Produce json
// @Param tenantId query string false "Tenant override (admin only)"
// @Param body body dto.CreateUserRoleRequest true "Assignment"
// @Success 201 {object} dto.Response[dto.UserRoleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user-roles [post]
func (h *UserRoleHandler) AssignUserRole(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	var req dto.CreateUserRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	role, err := h.service.Assign(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(role, "Role assigned successfully"))
}

// RemoveUserRole godoc
// @Summary Remove a role assignment
// @Tags user-roles
// @Produce json
// @Param id path string true "User role ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /user-roles/{id} [delete]
func (h *UserRoleHandler) RemoveUserRole(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(h.RequestCtx(c), tenantID, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](nil, "Role removed successfully"))
}
