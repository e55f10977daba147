package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	m        *sessionMocks
	actor    uuid.UUID
	tenantID uuid.UUID
	service  *CustomerService
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.m = newSessionMocks()
	s.actor = uuid.New()
	s.tenantID = uuid.New()
	s.service = NewCustomerService(s.m.store, nil)
	s.service.SetChangePublisher(s.m.publisher)
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.m.assertExpectations(s.T())
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) existing(tenantID uuid.UUID) *domain.Customer {
	return &domain.Customer{
		Model:             domain.Model{ID: uuid.New()},
		TenantID:          tenantID,
		CustomerCode:      "CUST-1",
		CustomerType:      domain.CustomerTypeIndividual,
		FirstName:         "Jane",
		LastName:          "Doe",
		Status:            domain.StatusActive,
		PreferredLanguage: "en",
		CreditLimit:       decimal.NewFromInt(100),
		IsActive:          true,
	}
}

func (s *CustomerServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateCustomerRequest{
		CustomerCode: "CUST-1",
		CustomerType: "Individual",
		FirstName:    "Jane",
		LastName:     "Doe",
		CreditLimit:  decimal.RequireFromString("2500.5"),
	}

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, s.tenantID).Return(&domain.Tenant{Model: domain.Model{ID: s.tenantID}}, nil)
	s.m.customers.On("IsCodeUnique", ctx, s.tenantID, "CUST-1", (*uuid.UUID)(nil)).Return(true, nil)
	s.m.customers.On("Add", mock.MatchedBy(func(c *domain.Customer) bool {
		return c.TenantID == s.tenantID && *c.CreatedBy == s.actor
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityCustomer, ActionCreated)

	// Act
	resp, err := s.service.Create(ctx, s.tenantID, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("Jane Doe", resp.FullName)
	s.Equal("2500.50", resp.CreditLimit)
	s.Equal(s.tenantID, resp.TenantID)
}

func (s *CustomerServiceTestSuite) TestCreate_UnknownTenant() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateCustomerRequest{CustomerCode: "CUST-1", CustomerType: "Corporate", CompanyName: "Globex"}

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, s.tenantID).Return(nil, nil)

	// Act
	_, err := s.service.Create(ctx, s.tenantID, req)

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *CustomerServiceTestSuite) TestCreate_CodeTakenInTenant() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateCustomerRequest{CustomerCode: "CUST-1", CustomerType: "Corporate", CompanyName: "Globex"}

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, s.tenantID).Return(&domain.Tenant{Model: domain.Model{ID: s.tenantID}}, nil)
	s.m.customers.On("IsCodeUnique", ctx, s.tenantID, "CUST-1", (*uuid.UUID)(nil)).Return(false, nil)

	// Act
	_, err := s.service.Create(ctx, s.tenantID, req)

	// Assert
	s.ErrorIs(err, ErrCustomerCodeExists)
}

func (s *CustomerServiceTestSuite) TestGetByID_OtherTenantIsNotFound() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(uuid.New())

	s.m.expectSession()
	s.m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)

	// Act
	_, err := s.service.GetByID(ctx, s.tenantID, customer.ID)

	// Assert
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerServiceTestSuite) TestGetByCode_Success() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(s.tenantID)

	s.m.expectSession()
	s.m.customers.On("GetByCode", ctx, s.tenantID, "CUST-1").Return(customer, nil)

	// Act
	resp, err := s.service.GetByCode(ctx, s.tenantID, "CUST-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(customer.ID, resp.ID)
}

func (s *CustomerServiceTestSuite) TestUpdate_ChangedCodeConflicts() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(s.tenantID)
	var req dto.UpdateCustomerRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"customerCode": "CUST-2"}`), &req))

	s.m.expectSession()
	s.m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	s.m.customers.On("IsCodeUnique", ctx, s.tenantID, "CUST-2", &customer.ID).Return(false, nil)

	// Act
	_, err := s.service.Update(ctx, s.tenantID, customer.ID, req)

	// Assert
	s.ErrorIs(err, ErrCustomerCodeExists)
}

func (s *CustomerServiceTestSuite) TestUpdate_AppliesPatch() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(s.tenantID)
	var req dto.UpdateCustomerRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"segment": "enterprise", "creditScore": 720}`), &req))

	s.m.expectSession()
	s.m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	s.m.customers.On("Update", mock.MatchedBy(func(c *domain.Customer) bool {
		return c.Segment == "enterprise" && *c.ModifiedBy == s.actor
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityCustomer, ActionUpdated)

	// Act
	resp, err := s.service.Update(ctx, s.tenantID, customer.ID, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("enterprise", resp.Segment)
	s.Require().NotNil(resp.CreditScore)
	s.Equal(720, *resp.CreditScore)
}

func (s *CustomerServiceTestSuite) TestDelete_SoftDeletes() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(s.tenantID)

	s.m.expectSession()
	s.m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	s.m.customers.On("Update", mock.MatchedBy(func(c *domain.Customer) bool {
		return !c.IsActive && c.Status == domain.StatusInactive
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityCustomer, ActionDeleted)

	// Act
	err := s.service.Delete(ctx, s.tenantID, customer.ID)

	// Assert
	s.NoError(err)
}

func (s *CustomerServiceTestSuite) TestExport_UsesSearchOnlyWithTerm() {
	// Arrange
	ctx := actorContext(s.actor)
	customer := s.existing(s.tenantID)

	s.m.store.On("NewUnitOfWork").Return(s.m.uow).Twice()
	s.m.uow.On("Close").Return(nil).Twice()
	s.m.customers.On("GetByTenantID", ctx, s.tenantID).Return([]domain.Customer{*customer}, nil).Once()
	s.m.customers.On("Search", ctx, s.tenantID, "jane").Return([]domain.Customer{}, nil).Once()

	// Act
	all, errAll := s.service.Export(ctx, s.tenantID, "")
	filtered, errFiltered := s.service.Export(ctx, s.tenantID, "jane")

	// Assert
	s.NoError(errAll)
	s.NoError(errFiltered)
	s.Len(all, 1)
	s.Empty(filtered)
}

func (s *CustomerServiceTestSuite) TestList_PassesFilterThrough() {
	// Arrange
	ctx := actorContext(s.actor)
	filter := domain.CustomerFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 10},
		TenantID:    s.tenantID,
		Status:      domain.StatusActive,
		Segment:     "retail",
	}

	s.m.expectSession()
	s.m.customers.On("GetPaged", ctx, filter).Return(&domain.Page[domain.Customer]{PageNumber: 1, PageSize: 10}, nil)

	// Act
	page, err := s.service.List(ctx, filter)

	// Assert
	s.Require().NoError(err)
	s.Empty(page.Items)
	s.Zero(page.TotalCount)
}
