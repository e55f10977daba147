package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/mocks"
	"github.com/kingrain94/saas-platform-api/internal/service"
)

type UserHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.UserService
	handler     *UserHandler
	tenantID    uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewUserService(s.T())
	s.handler = NewUserHandler(newTestBase(), s.mockService)
	s.tenantID = uuid.New()
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreateUser_WithRoles() {
	// Arrange
	roleID := uuid.New()
	req := dto.CreateUserRequest{
		UserName: "jdoe",
		Email:    "jane.doe@acme.com",
		Password: "s3cure-passw0rd",
		RoleIDs:  []uuid.UUID{roleID},
	}
	created := &dto.UserResponse{ID: uuid.New(), TenantID: s.tenantID, UserName: "jdoe", Email: req.Email, RoleIDs: []uuid.UUID{roleID}}
	s.mockService.On("Create", mock.Anything, s.tenantID, req).Return(created, nil)

	c, w := newTestContext(http.MethodPost, "/users", req, caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateUser(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.NotContains(w.Body.String(), "s3cure-passw0rd")
	response := decode[dto.Response[dto.UserResponse]](s.T(), w)
	s.Equal([]uuid.UUID{roleID}, response.Data.RoleIDs)
}

func (s *UserHandlerTestSuite) TestCreateUser_ShortPassword() {
	// Arrange
	body := map[string]any{"userName": "jdoe", "email": "jane.doe@acme.com", "password": "short"}
	c, w := newTestContext(http.MethodPost, "/users", body, caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateUser(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestCreateUser_EmailTaken() {
	// Arrange
	req := dto.CreateUserRequest{UserName: "jdoe", Email: "jane.doe@acme.com", Password: "s3cure-passw0rd"}
	s.mockService.On("Create", mock.Anything, s.tenantID, req).Return(nil, service.ErrEmailAlreadyExists)
	c, w := newTestContext(http.MethodPost, "/users", req, caller(s.tenantID, "manager"))

	// Act
	s.handler.CreateUser(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	response := decode[dto.ErrorResponse](s.T(), w)
	s.Equal("email already exists in this tenant", response.Message)
}

func (s *UserHandlerTestSuite) TestListUsers_ActiveFilter() {
	// Arrange
	active := true
	s.mockService.On("List", mock.Anything, domain.UserFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 25},
		TenantID:    s.tenantID,
		IsActive:    &active,
	}).Return(&domain.Page[dto.UserResponse]{Items: []dto.UserResponse{{UserName: "jdoe"}}, PageNumber: 1, PageSize: 25, TotalCount: 1}, nil)
	c, w := newTestContext(http.MethodGet, "/users?pageSize=25&isActive=true", nil, caller(s.tenantID, "viewer"))

	// Act
	s.handler.ListUsers(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	response := decode[map[string]any](s.T(), w)
	s.EqualValues(1, response["totalRecords"])
}

func (s *UserHandlerTestSuite) TestListUsers_MalformedActiveFilter() {
	// Arrange
	c, w := newTestContext(http.MethodGet, "/users?isActive=maybe", nil, caller(s.tenantID, "viewer"))

	// Act
	s.handler.ListUsers(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestGetUserByEmail_NotFound() {
	// Arrange
	s.mockService.On("GetByEmail", mock.Anything, s.tenantID, "ghost@acme.com").Return(nil, service.ErrUserNotFound)
	c, w := newTestContext(http.MethodGet, "/users/by-email?email=ghost@acme.com", nil, caller(s.tenantID, "viewer"))

	// Act
	s.handler.GetUserByEmail(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *UserHandlerTestSuite) TestUpdateUser_NullRequiredFieldRejected() {
	// Arrange
	id := uuid.New()
	c, w := newTestContext(http.MethodPut, "/users/"+id.String(), `{"email":null}`, caller(s.tenantID, "manager"), idParam(id))
	s.mockService.On("Update", mock.Anything, s.tenantID, id, mock.MatchedBy(func(req dto.UpdateUserRequest) bool {
		return req.Email.IsNull()
	})).Return(nil, fmt.Errorf("%w: email cannot be null", service.ErrValidation))

	// Act
	s.handler.UpdateUser(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestDeleteUser_Success() {
	// Arrange
	id := uuid.New()
	s.mockService.On("Delete", mock.Anything, s.tenantID, id).Return(nil)
	c, w := newTestContext(http.MethodDelete, "/users/"+id.String(), nil, caller(s.tenantID, "manager"), idParam(id))

	// Act
	s.handler.DeleteUser(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
}
