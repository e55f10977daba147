package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TenantResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.TenantResponse, error)
	GetByContactEmail(ctx context.Context, email string) ([]dto.TenantResponse, error)
	List(ctx context.Context, filter domain.TenantFilter) (*domain.Page[dto.TenantResponse], error)
	Search(ctx context.Context, term string) ([]dto.TenantResponse, error)
	GetActive(ctx context.Context) ([]dto.TenantResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(base *BaseHandler, service TenantService) *TenantHandler {
	return &TenantHandler{BaseHandler: base, service: service}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Create a new tenant. Tenant codes are unique across the system.
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.Response[dto.TenantResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(tenant, "Tenant created successfully"))
}

// ListTenants godoc
// @Summary List tenants
// @Description Get a page of tenants, newest first
// @Tags tenants
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param searchTerm query string false "Matches name, code or contact email"
// @Param status query string false "Active, Inactive or Blocked"
// @Success 200 {object} dto.PagedResponse[dto.TenantResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, ok := h.pageRequest(c)
	if !ok {
		return
	}
	status, ok := parseStatus(c)
	if !ok {
		return
	}

	result, err := h.service.List(h.RequestCtx(c), domain.TenantFilter{
		PageRequest: page,
		SearchTerm:  c.Query("searchTerm"),
		Status:      status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(result.Items, result.PageNumber, result.PageSize, result.TotalCount, "Tenants retrieved successfully"))
}

// SearchTenants godoc
// @Summary Search tenants
// @Description Case-insensitive substring search over name, code and contact email
// @Tags tenants
// @Produce json
// @Param searchTerm query string false "Search term"
// @Success 200 {object} dto.Response[[]dto.TenantResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/search [get]
func (h *TenantHandler) SearchTenants(c *gin.Context) {
	tenants, err := h.service.Search(h.RequestCtx(c), c.Query("searchTerm"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenants, "Tenants retrieved successfully"))
}

// GetActiveTenants godoc
// @Summary List active tenants
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.Response[[]dto.TenantResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/active [get]
func (h *TenantHandler) GetActiveTenants(c *gin.Context) {
	tenants, err := h.service.GetActive(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenants, "Active tenants retrieved successfully"))
}

// GetTenantByCode godoc
// @Summary Get tenant by code
// @Tags tenants
// @Produce json
// @Param code path string true "Tenant code"
// @Success 200 {object} dto.Response[dto.TenantResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/by-code/{code} [get]
func (h *TenantHandler) GetTenantByCode(c *gin.Context) {
	tenant, err := h.service.GetByCode(h.RequestCtx(c), c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenant, "Tenant retrieved successfully"))
}

// GetTenantsByEmail godoc
// @Summary Find tenants by contact email
// @Tags tenants
// @Produce json
// @Param email query string true "Contact email"
// @Success 200 {object} dto.Response[[]dto.TenantResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/by-email [get]
func (h *TenantHandler) GetTenantsByEmail(c *gin.Context) {
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}

	tenants, err := h.service.GetByContactEmail(h.RequestCtx(c), email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenants, "Tenants retrieved successfully"))
}

// GetTenant godoc
// @Summary Get tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.Response[dto.TenantResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(h.RequestCtx(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenant, "Tenant retrieved successfully"))
}

// UpdateTenant godoc
// @Summary Update tenant
// @Description Partial update. Absent fields are left unchanged, null clears optional fields.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body dto.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} dto.Response[dto.TenantResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tenant, "Tenant updated successfully"))
}

// DeleteTenant godoc
// @Summary Deactivate tenant
// @Description Soft-deletes the tenant and deactivates all of its users in one transaction
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](nil, "Tenant deleted successfully"))
}
