package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
)

type UserRoleServiceTestSuite struct {
	suite.Suite
	m        *sessionMocks
	actor    uuid.UUID
	tenantID uuid.UUID
	user     *domain.User
	service  *UserRoleService
}

func (s *UserRoleServiceTestSuite) SetupTest() {
	s.m = newSessionMocks()
	s.actor = uuid.New()
	s.tenantID = uuid.New()
	s.user = &domain.User{Model: domain.Model{ID: uuid.New()}, TenantID: s.tenantID, IsActive: true}
	s.service = NewUserRoleService(s.m.store, nil)
	s.service.SetChangePublisher(s.m.publisher)
}

func (s *UserRoleServiceTestSuite) TearDownTest() {
	s.m.assertExpectations(s.T())
}

func TestUserRoleService(t *testing.T) {
	suite.Run(t, new(UserRoleServiceTestSuite))
}

func (s *UserRoleServiceTestSuite) TestAssign_Success() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateUserRoleRequest{UserID: s.user.ID, RoleID: uuid.New()}

	s.m.expectSession()
	s.m.users.On("GetByID", ctx, s.user.ID).Return(s.user, nil)
	s.m.userRoles.On("Exists", ctx, req.UserID, req.RoleID).Return(false, nil)
	s.m.userRoles.On("Add", mock.MatchedBy(func(r *domain.UserRole) bool {
		return r.UserID == req.UserID && r.RoleID == req.RoleID && *r.CreatedBy == s.actor
	})).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityUserRole, ActionCreated)

	// Act
	resp, err := s.service.Assign(ctx, s.tenantID, req)

	// Assert
	s.Require().NoError(err)
	s.Equal(req.RoleID, resp.RoleID)
}

func (s *UserRoleServiceTestSuite) TestAssign_AlreadyAssigned() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateUserRoleRequest{UserID: s.user.ID, RoleID: uuid.New()}

	s.m.expectSession()
	s.m.users.On("GetByID", ctx, s.user.ID).Return(s.user, nil)
	s.m.userRoles.On("Exists", ctx, req.UserID, req.RoleID).Return(true, nil)

	// Act
	_, err := s.service.Assign(ctx, s.tenantID, req)

	// Assert
	s.ErrorIs(err, ErrUserRoleExists)
	s.ErrorIs(err, ErrConflict)
}

func (s *UserRoleServiceTestSuite) TestAssign_UserOfOtherTenant() {
	// Arrange
	ctx := actorContext(s.actor)
	req := dto.CreateUserRoleRequest{UserID: s.user.ID, RoleID: uuid.New()}

	s.m.expectSession()
	s.m.users.On("GetByID", ctx, s.user.ID).Return(s.user, nil)

	// Act
	_, err := s.service.Assign(ctx, uuid.New(), req)

	// Assert
	s.ErrorIs(err, ErrUserNotFound)
	s.m.userRoles.AssertNotCalled(s.T(), "Add", mock.Anything)
}

func (s *UserRoleServiceTestSuite) TestRemove_DeletesAssignment() {
	// Arrange
	ctx := actorContext(s.actor)
	role := &domain.UserRole{Model: domain.Model{ID: uuid.New()}, UserID: s.user.ID, RoleID: uuid.New()}

	s.m.expectSession()
	s.m.userRoles.On("GetByID", ctx, role.ID).Return(role, nil)
	s.m.users.On("GetByID", ctx, s.user.ID).Return(s.user, nil)
	s.m.userRoles.On("Remove", role).Return()
	s.m.uow.On("SaveChanges", ctx).Return(int64(1), nil)
	s.m.expectEvent(EntityUserRole, ActionDeleted)

	// Act
	err := s.service.Remove(ctx, s.tenantID, role.ID)

	// Assert
	s.NoError(err)
}

func (s *UserRoleServiceTestSuite) TestGetByID_Missing() {
	// Arrange
	ctx := actorContext(s.actor)
	id := uuid.New()

	s.m.expectSession()
	s.m.userRoles.On("GetByID", ctx, id).Return(nil, nil)

	// Act
	_, err := s.service.GetByID(ctx, s.tenantID, id)

	// Assert
	s.ErrorIs(err, ErrUserRoleNotFound)
}

func (s *UserRoleServiceTestSuite) TestList_ScopedToUser() {
	// Arrange
	ctx := actorContext(s.actor)
	filter := domain.UserRoleFilter{PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 10}, UserID: s.user.ID}
	roles := []domain.UserRole{{Model: domain.Model{ID: uuid.New()}, UserID: s.user.ID, RoleID: uuid.New()}}

	s.m.expectSession()
	s.m.users.On("GetByID", ctx, s.user.ID).Return(s.user, nil)
	s.m.userRoles.On("GetPaged", ctx, filter).Return(&domain.Page[domain.UserRole]{
		Items: roles, TotalCount: 1, PageNumber: 1, PageSize: 10,
	}, nil)

	// Act
	page, err := s.service.List(ctx, s.tenantID, filter)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal(roles[0].RoleID, page.Items[0].RoleID)
}
