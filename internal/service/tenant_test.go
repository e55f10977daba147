package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

type TenantServiceTestSuite struct {
	suite.Suite
	m       *sessionMocks
	actor   uuid.UUID
	service *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.m = newSessionMocks()
	s.actor = uuid.New()
	s.service = NewTenantService(s.m.store, nil)
	s.service.SetChangePublisher(s.m.publisher)
}

func (s *TenantServiceTestSuite) TearDownTest() {
	s.m.assertExpectations(s.T())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) existing() *domain.Tenant {
	return &domain.Tenant{
		Model:              domain.Model{ID: uuid.New()},
		Name:               "Acme",
		Code:               "ACME",
		SubscriptionPlanID: "basic",
		Status:             domain.StatusActive,
		IsActive:           true,
	}
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateTenantRequest{Name: "Acme", Code: "ACME", SubscriptionPlanID: "basic"}

	s.m.expectSession()
	s.m.tenants.On("IsCodeUnique", ctx, "ACME", (*uuid.UUID)(nil)).Return(true, nil)
	s.m.tenants.On("Add", mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Code == "ACME" && t.CreatedBy != nil && *t.CreatedBy == s.actor
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityTenant, ActionCreated)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("ACME", resp.Code)
	s.Equal(string(domain.StatusActive), resp.Status)
	s.True(resp.IsActive)
}

func (s *TenantServiceTestSuite) TestCreate_CodeTaken() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateTenantRequest{Name: "Acme", Code: "ACME", SubscriptionPlanID: "basic"}

	s.m.expectSession()
	s.m.tenants.On("IsCodeUnique", ctx, "ACME", (*uuid.UUID)(nil)).Return(false, nil)

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, ErrTenantCodeExists)
	s.ErrorIs(err, ErrConflict)
	s.m.tenants.AssertNotCalled(s.T(), "Add", mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_InvalidRequestNeverOpensSession() {
	// Arrange
	req := dto.CreateTenantRequest{Name: "Acme", Code: "ACME", SubscriptionPlanID: "basic", Status: "Archived"}

	// Act
	_, err := s.service.Create(actorContext(s.actor), req)

	// Assert
	s.ErrorIs(err, ErrValidation)
	s.Contains(dto.ValidationMessages(err), "status must be one of: Active, Inactive, Blocked")
	s.m.store.AssertNotCalled(s.T(), "NewUnitOfWork")
}

func (s *TenantServiceTestSuite) TestCreate_DuplicateKeyOnFlushIsConflict() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateTenantRequest{Name: "Acme", Code: "ACME", SubscriptionPlanID: "basic"}

	s.m.expectSession()
	s.m.tenants.On("IsCodeUnique", ctx, "ACME", (*uuid.UUID)(nil)).Return(true, nil)
	s.m.tenants.On("Add", mock.Anything).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(0), gorm.ErrDuplicatedKey)

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, ErrTenantCodeExists)
	s.m.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_PublishFailureIsNotReturned() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateTenantRequest{Name: "Acme", Code: "ACME", SubscriptionPlanID: "basic"}

	s.m.expectSession()
	s.m.tenants.On("IsCodeUnique", ctx, "ACME", (*uuid.UUID)(nil)).Return(true, nil)
	s.m.tenants.On("Add", mock.Anything).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.NotNil(resp)
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := actorContext(s.actor)
	id := uuid.New()

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, id).Return(nil, nil)

	// Act
	_, err := s.service.GetByID(ctx, id)

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.ErrorIs(err, ErrNotFound)
}

func (s *TenantServiceTestSuite) TestGetByID_StoreErrorPropagates() {
	// Arrange
	ctx := actorContext(s.actor)
	id := uuid.New()
	storeErr := errors.New("connection refused")

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, id).Return(nil, storeErr)

	// Act
	_, err := s.service.GetByID(ctx, id)

	// Assert
	s.ErrorIs(err, storeErr)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *TenantServiceTestSuite) TestList_MapsPage() {
	// Arrange
	ctx := actorContext(s.actor)
	filter := domain.TenantFilter{PageRequest: domain.PageRequest{PageNumber: 2, PageSize: 1}}
	tenant := s.existing()

	s.m.expectSession()
	s.m.tenants.On("GetPaged", ctx, filter).Return(&domain.Page[domain.Tenant]{
		Items:      []domain.Tenant{*tenant},
		TotalCount: 3,
		PageNumber: 2,
		PageSize:   1,
	}, nil)

	// Act
	page, err := s.service.List(ctx, filter)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal(tenant.ID, page.Items[0].ID)
	s.EqualValues(3, page.TotalCount)
	s.Equal(2, page.PageNumber)
}

func (s *TenantServiceTestSuite) TestUpdate_NewCodeMustBeUnique() {
	// Arrange
	ctx := actorContext(s.actor)
	tenant := s.existing()
	var req dto.UpdateTenantRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"code": "GLOBEX"}`), &req))

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, tenant.ID).Return(tenant, nil)
	s.m.tenants.On("IsCodeUnique", ctx, "GLOBEX", &tenant.ID).Return(false, nil)

	// Act
	_, err := s.service.Update(ctx, tenant.ID, req)

	// Assert
	s.ErrorIs(err, ErrTenantCodeExists)
	s.m.tenants.AssertNotCalled(s.T(), "Update", mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_UnchangedCodeSkipsUniquenessCheck() {
	// Arrange
	ctx := actorContext(s.actor)
	tenant := s.existing()
	var req dto.UpdateTenantRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"code": "ACME", "name": "Acme Holdings"}`), &req))

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, tenant.ID).Return(tenant, nil)
	s.m.tenants.On("Update", mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Name == "Acme Holdings" && t.ModifiedBy != nil && *t.ModifiedBy == s.actor
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityTenant, ActionUpdated)

	// Act
	resp, err := s.service.Update(ctx, tenant.ID, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("Acme Holdings", resp.Name)
	s.m.tenants.AssertNotCalled(s.T(), "IsCodeUnique", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_InvalidPatch() {
	// Arrange
	ctx := actorContext(s.actor)
	tenant := s.existing()
	var req dto.UpdateTenantRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"name": null}`), &req))

	s.m.expectSession()
	s.m.tenants.On("GetByID", ctx, tenant.ID).Return(tenant, nil)

	// Act
	_, err := s.service.Update(ctx, tenant.ID, req)

	// Assert
	s.ErrorIs(err, ErrValidation)
	s.Contains(dto.ValidationMessages(err), "name cannot be empty")
}

func (s *TenantServiceTestSuite) TestDelete_DeactivatesTenantAndActiveUsers() {
	// Arrange
	ctx := actorContext(s.actor)
	tenant := s.existing()
	active := domain.User{Model: domain.Model{ID: uuid.New()}, TenantID: tenant.ID, IsActive: true}
	inactive := domain.User{Model: domain.Model{ID: uuid.New()}, TenantID: tenant.ID}

	s.m.expectSession()
	s.m.uow.On("BeginTransaction", ctx).Return(nil)
	s.m.tenants.On("GetByID", ctx, tenant.ID).Return(tenant, nil)
	s.m.tenants.On("Update", mock.MatchedBy(func(t *domain.Tenant) bool {
		return !t.IsActive && t.Status == domain.StatusInactive
	})).Return()
	s.m.users.On("GetByTenantID", ctx, tenant.ID).Return([]domain.User{active, inactive}, nil)
	s.m.users.On("Update", mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == active.ID && !u.IsActive && *u.ModifiedBy == s.actor
	})).Return().Once()
	s.m.uow.On("Commit", ctx).Return(nil)
	s.m.expectEvent(EntityTenant, ActionDeleted)

	// Act
	err := s.service.Delete(ctx, tenant.ID)

	// Assert
	s.NoError(err)
	s.m.users.AssertNumberOfCalls(s.T(), "Update", 1)
}

func (s *TenantServiceTestSuite) TestDelete_NotFoundNeverCommits() {
	// Arrange
	ctx := actorContext(s.actor)
	id := uuid.New()

	s.m.expectSession()
	s.m.uow.On("BeginTransaction", ctx).Return(nil)
	s.m.tenants.On("GetByID", ctx, id).Return(nil, nil)

	// Act
	err := s.service.Delete(ctx, id)

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.m.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *TenantServiceTestSuite) TestDelete_CommitFailureIsReturned() {
	// Arrange
	ctx := actorContext(s.actor)
	tenant := s.existing()
	commitErr := errors.New("serialization failure")

	s.m.expectSession()
	s.m.uow.On("BeginTransaction", ctx).Return(nil)
	s.m.tenants.On("GetByID", ctx, tenant.ID).Return(tenant, nil)
	s.m.tenants.On("Update", mock.Anything).Return()
	s.m.users.On("GetByTenantID", ctx, tenant.ID).Return([]domain.User{}, nil)
	s.m.uow.On("Commit", ctx).Return(commitErr)

	// Act
	err := s.service.Delete(ctx, tenant.ID)

	// Assert
	s.ErrorIs(err, commitErr)
	s.m.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}
