package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.UserResponse, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*dto.UserResponse, error)
	List(ctx context.Context, filter domain.UserFilter) (*domain.Page[dto.UserResponse], error)
	Search(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.UserResponse, error)
	GetActive(ctx context.Context, tenantID uuid.UUID) ([]dto.UserResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(base *BaseHandler, service UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// CreateUser godoc
// @Summary Create user
// @Description Create a user, optionally with initial roles, in one transaction. Emails are unique per tenant.
// @Tags users
// @Accept json
// @Produce json
// @Param tenantId query string false "Tenant override (admin only)"
// @Param body body dto.CreateUserRequest true "User object"
// @Success 201 {object} dto.Response[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(user, "User created successfully"))
}

// ListUsers godoc
// @Summary List users
// @Description Get a page of the tenant's users, newest first
// @Tags users
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param searchTerm query string false "Matches user name, email or names"
// @Param isActive query bool false "Only active or only inactive users"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.PagedResponse[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	page, ok := h.pageRequest(c)
	if !ok {
		return
	}

	filter := domain.UserFilter{
		PageRequest: page,
		TenantID:    tenantID,
		SearchTerm:  c.Query("searchTerm"),
	}
	if raw := c.Query("isActive"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", "isActive must be true or false"))
			return
		}
		filter.IsActive = &isActive
	}

	result, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(result.Items, result.PageNumber, result.PageSize, result.TotalCount, "Users retrieved successfully"))
}

// SearchUsers godoc
// @Summary Search users
// @Tags users
// @Produce json
// @Param searchTerm query string false "Search term"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[[]dto.UserResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	users, err := h.service.Search(h.RequestCtx(c), tenantID, c.Query("searchTerm"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(users, "Users retrieved successfully"))
}

// GetActiveUsers godoc
// @Summary List active users
// @Tags users
// @Produce json
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[[]dto.UserResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/active [get]
func (h *UserHandler) GetActiveUsers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	users, err := h.service.GetActive(h.RequestCtx(c), tenantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(users, "Active users retrieved successfully"))
}

// GetUserByEmail godoc
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/by-email [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}

	user, err := h.service.GetByEmail(h.RequestCtx(c), tenantID, email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user, "User retrieved successfully"))
}

// GetUser godoc
// @Summary Get user
// @Description Get a user together with the ids of its assigned roles
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(h.RequestCtx(c), tenantID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user, "User retrieved successfully"))
}

// UpdateUser godoc
// @Summary Update user
// @Description Partial update. A new password is hashed before it is stored.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Param body body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.Response[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), tenantID, id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user, "User updated successfully"))
}

// DeleteUser godoc
// @Summary Deactivate user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](nil, "User deleted successfully"))
}
