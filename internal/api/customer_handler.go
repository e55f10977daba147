package api

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

//go:generate mockery --name CustomerService --output ../mocks
type CustomerService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.CustomerResponse, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*dto.CustomerResponse, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) ([]dto.CustomerResponse, error)
	List(ctx context.Context, filter domain.CustomerFilter) (*domain.Page[dto.CustomerResponse], error)
	Search(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.CustomerResponse, error)
	GetActive(ctx context.Context, tenantID uuid.UUID) ([]dto.CustomerResponse, error)
	Export(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type CustomerHandler struct {
	*BaseHandler
	service CustomerService
}

func NewCustomerHandler(base *BaseHandler, service CustomerService) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, service: service}
}

// CreateCustomer godoc
// @Summary Create customer
// @Description Create a customer in the caller's tenant. Customer codes are unique per tenant.
// @Tags customers
// @Accept json
// @Produce json
// @Param tenantId query string false "Tenant override (admin only)"
// @Param body body dto.CreateCustomerRequest true "Customer object"
// @Success 201 {object} dto.Response[dto.CustomerResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(customer, "Customer created successfully"))
}

// ListCustomers godoc
// @Summary List customers
// @Description Get a page of the tenant's customers, newest first. Filters combine with AND.
// @Tags customers
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param searchTerm query string false "Matches code, names, email or phone"
// @Param status query string false "Active, Inactive or Blocked"
// @Param segment query string false "Segment"
// @Param customerType query string false "Individual or Corporate"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.PagedResponse[dto.CustomerResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	page, ok := h.pageRequest(c)
	if !ok {
		return
	}
	status, ok := parseStatus(c)
	if !ok {
		return
	}
	customerType := domain.CustomerType(c.Query("customerType"))
	if customerType != "" && !customerType.IsValid() {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", "customerType must be one of: Individual, Corporate"))
		return
	}

	result, err := h.service.List(h.RequestCtx(c), domain.CustomerFilter{
		PageRequest:  page,
		TenantID:     tenantID,
		SearchTerm:   c.Query("searchTerm"),
		Status:       status,
		Segment:      c.Query("segment"),
		CustomerType: customerType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(result.Items, result.PageNumber, result.PageSize, result.TotalCount, "Customers retrieved successfully"))
}

// SearchCustomers godoc
// @Summary Search customers
// @Tags customers
// @Produce json
// @Param searchTerm query string false "Search term"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[[]dto.CustomerResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/search [get]
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	customers, err := h.service.Search(h.RequestCtx(c), tenantID, c.Query("searchTerm"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customers, "Customers retrieved successfully"))
}

// GetActiveCustomers godoc
// @Summary List active customers
// @Tags customers
// @Produce json
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[[]dto.CustomerResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/active [get]
func (h *CustomerHandler) GetActiveCustomers(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	customers, err := h.service.GetActive(h.RequestCtx(c), tenantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customers, "Active customers retrieved successfully"))
}

// GetCustomerByCode godoc
// @Summary Get customer by code
// @Tags customers
// @Produce json
// @Param code path string true "Customer code"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[dto.CustomerResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/by-code/{code} [get]
func (h *CustomerHandler) GetCustomerByCode(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	customer, err := h.service.GetByCode(h.RequestCtx(c), tenantID, c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customer, "Customer retrieved successfully"))
}

// GetCustomersByEmail godoc
// @Summary Find customers by email
// @Tags customers
// @Produce json
// @Param email query string true "Email"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[[]dto.CustomerResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/by-email [get]
func (h *CustomerHandler) GetCustomersByEmail(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}

	customers, err := h.service.GetByEmail(h.RequestCtx(c), tenantID, email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customers, "Customers retrieved successfully"))
}

// GetCustomer godoc
// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.Response[dto.CustomerResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.GetByID(h.RequestCtx(c), tenantID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customer, "Customer retrieved successfully"))
}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Partial update. Absent fields are left unchanged, null clears optional fields.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Param body body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} dto.Response[dto.CustomerResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Update(h.RequestCtx(c), tenantID, id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(customer, "Customer updated successfully"))
}

// DeleteCustomer godoc
// @Summary Deactivate customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {object} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.OK[any](nil, "Customer deleted successfully"))
}

// ExportCustomers godoc
// @Summary Export customers
// @Description Export the tenant's customers in JSON or CSV format
// @Tags customers
// @Produce json,text/csv
// @Param format query string false "Export format (json or csv)" default(json)
// @Param searchTerm query string false "Only customers matching the term"
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid format. Must be 'json' or 'csv'"))
		return
	}
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	customers, err := h.service.Export(h.RequestCtx(c), tenantID, c.Query("searchTerm"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	switch format {
	case "json":
		c.Header("Content-Disposition", "attachment; filename=customers.json")
		c.JSON(http.StatusOK, customers)
	case "csv":
		c.Header("Content-Disposition", "attachment; filename=customers.csv")
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		header := []string{
			"ID", "CustomerCode", "CustomerType", "FullName", "Email", "Phone",
			"Mobile", "City", "Country", "Segment", "Status", "CreditLimit",
			"CreditScore", "IsActive", "CreatedDate",
		}
		if err := writer.Write(header); err != nil {
			h.logger.Error("failed to write CSV header", err)
			return
		}

		for _, customer := range customers {
			creditScore := ""
			if customer.CreditScore != nil {
				creditScore = strconv.Itoa(*customer.CreditScore)
			}
			record := []string{
				customer.ID.String(),
				customer.CustomerCode,
				customer.CustomerType,
				customer.FullName,
				customer.Email,
				customer.Phone,
				customer.Mobile,
				customer.City,
				customer.Country,
				customer.Segment,
				customer.Status,
				customer.CreditLimit,
				creditScore,
				strconv.FormatBool(customer.IsActive),
				customer.CreatedDate.Format(time.RFC3339),
			}
			if err := writer.Write(record); err != nil {
				h.logger.Error("failed to write CSV record", err)
				return
			}
		}
	}
}
