package api

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/mocks"
	"github.com/kingrain94/saas-platform-api/internal/service"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.CustomerService
	handler     *CustomerHandler
	tenantID    uuid.UUID
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewCustomerService(s.T())
	s.handler = NewCustomerHandler(newTestBase(), s.mockService)
	s.tenantID = uuid.New()
}

func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) individual() map[string]any {
	return map[string]any{
		"customerCode": "CUST-0001",
		"customerType": "Individual",
		"firstName":    "Jane",
		"lastName":     "Doe",
		"email":        "jane.doe@example.com",
		"creditLimit":  "1500.50",
		"creditScore":  720,
	}
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_UsesTokenTenant() {
	// Arrange
	created := &dto.CustomerResponse{ID: uuid.New(), TenantID: s.tenantID, CustomerCode: "CUST-0001", CreditLimit: "1500.5"}
	s.mockService.On("Create", mock.Anything, s.tenantID, mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
		return req.CustomerCode == "CUST-0001" && req.CreditLimit.String() == "1500.5"
	})).Return(created, nil)

	c, w := newTestContext(http.MethodPost, "/customers", s.individual(), caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateCustomer(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	response := decode[dto.Response[dto.CustomerResponse]](s.T(), w)
	s.Equal(created.ID, response.Data.ID)
	s.Equal(s.tenantID, response.Data.TenantID)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_IndividualNeedsNames() {
	// Arrange
	body := s.individual()
	delete(body, "firstName")
	c, w := newTestContext(http.MethodPost, "/customers", body, caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateCustomer(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	response := decode[dto.ErrorResponse](s.T(), w)
	s.NotEmpty(response.Errors)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_CreditScoreOutOfRange() {
	// Arrange
	body := s.individual()
	body["creditScore"] = 900
	c, w := newTestContext(http.MethodPost, "/customers", body, caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateCustomer(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_CodeTakenInTenant() {
	// Arrange
	s.mockService.On("Create", mock.Anything, s.tenantID, mock.Anything).Return(nil, service.ErrCustomerCodeExists)
	c, w := newTestContext(http.MethodPost, "/customers", s.individual(), caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateCustomer(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	response := decode[dto.ErrorResponse](s.T(), w)
	s.Equal("customer code already exists in this tenant", response.Message)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_AdminMayOverrideTenant() {
	// Arrange
	other := uuid.New()
	id := uuid.New()
	s.mockService.On("GetByID", mock.Anything, other, id).Return(&dto.CustomerResponse{ID: id, TenantID: other}, nil)
	c, w := newTestContext(http.MethodGet, "/customers/"+id.String()+"?tenantId="+other.String(), nil, caller(s.tenantID, "admin"), idParam(id))

	// Act
	s.handler.GetCustomer(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_OverrideIgnoredForNonAdmin() {
	// Arrange
	id := uuid.New()
	s.mockService.On("GetByID", mock.Anything, s.tenantID, id).Return(nil, service.ErrCustomerNotFound)
	c, w := newTestContext(http.MethodGet, "/customers/"+id.String()+"?tenantId="+uuid.NewString(), nil, caller(s.tenantID, "viewer"), idParam(id))

	// Act
	s.handler.GetCustomer(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_MalformedOverride() {
	// Arrange
	id := uuid.New()
	c, w := newTestContext(http.MethodGet, "/customers/"+id.String()+"?tenantId=acme", nil, caller(s.tenantID, "admin"), idParam(id))

	// Act
	s.handler.GetCustomer(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_TokenWithoutTenant() {
	// Arrange
	id := uuid.New()
	claims := jwt.MapClaims{"user_id": uuid.NewString(), "roles": []string{"viewer"}}
	c, w := newTestContext(http.MethodGet, "/customers/"+id.String(), nil, claims, idParam(id))

	// Act
	s.handler.GetCustomer(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_CombinesFilters() {
	// Arrange
	s.mockService.On("List", mock.Anything, domain.CustomerFilter{
		PageRequest:  domain.PageRequest{PageNumber: 1, PageSize: 10},
		TenantID:     s.tenantID,
		SearchTerm:   "doe",
		Status:       domain.StatusActive,
		Segment:      "enterprise",
		CustomerType: domain.CustomerTypeCorporate,
	}).Return(&domain.Page[dto.CustomerResponse]{PageNumber: 1, PageSize: 10}, nil)

	c, w := newTestContext(http.MethodGet, "/customers?searchTerm=doe&status=Active&segment=enterprise&customerType=Corporate", nil, caller(s.tenantID, "viewer"))

	// Act
	s.handler.ListCustomers(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	response := decode[map[string]any](s.T(), w)
	s.Equal([]any{}, response["data"])
	s.EqualValues(0, response["totalPages"])
}

func (s *CustomerHandlerTestSuite) TestListCustomers_UnknownCustomerType() {
	// Arrange
	c, w := newTestContext(http.MethodGet, "/customers?customerType=Partner", nil, caller(s.tenantID, "viewer"))

	// Act
	s.handler.ListCustomers(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CustomerHandlerTestSuite) TestExportCustomers_CSV() {
	// Arrange
	score := 700
	created := time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC)
	s.mockService.On("Export", mock.Anything, s.tenantID, "").Return([]dto.CustomerResponse{
		{
			ID:           uuid.New(),
			CustomerCode: "CUST-0001",
			CustomerType: "Individual",
			FullName:     "Jane Doe",
			Email:        "jane.doe@example.com",
			Status:       "Active",
			CreditLimit:  "100",
			CreditScore:  &score,
			IsActive:     true,
			AuditInfo:    dto.AuditInfo{CreatedDate: created},
		},
	}, nil)
	c, w := newTestContext(http.MethodGet, "/customers/export?format=csv", nil, caller(s.tenantID, "manager"))

	// Act
	s.handler.ExportCustomers(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Equal("attachment; filename=customers.csv", w.Header().Get("Content-Disposition"))
	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("CustomerCode", records[0][1])
	s.Equal("CUST-0001", records[1][1])
	s.Equal("700", records[1][12])
	s.Equal("2025-07-17T21:20:48Z", records[1][14])
}

func (s *CustomerHandlerTestSuite) TestExportCustomers_JSONWithSearchTerm() {
	// Arrange
	s.mockService.On("Export", mock.Anything, s.tenantID, "doe").Return([]dto.CustomerResponse{{CustomerCode: "C-1"}}, nil)
	c, w := newTestContext(http.MethodGet, "/customers/export?searchTerm=doe", nil, caller(s.tenantID, "manager"))

	// Act
	s.handler.ExportCustomers(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	exported := decode[[]dto.CustomerResponse](s.T(), w)
	s.Len(exported, 1)
}

func (s *CustomerHandlerTestSuite) TestExportCustomers_UnknownFormat() {
	// Arrange
	c, w := newTestContext(http.MethodGet, "/customers/export?format=xml", nil, caller(s.tenantID, "manager"))

	// Act
	s.handler.ExportCustomers(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CustomerHandlerTestSuite) TestDeleteCustomer_NotFound() {
	// Arrange
	id := uuid.New()
	s.mockService.On("Delete", mock.Anything, s.tenantID, id).Return(service.ErrCustomerNotFound)
	c, w := newTestContext(http.MethodDelete, "/customers/"+id.String(), nil, caller(s.tenantID, "manager"), idParam(id))

	// Act
	s.handler.DeleteCustomer(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}
