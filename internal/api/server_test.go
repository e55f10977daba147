package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/middleware"
	"github.com/kingrain94/saas-platform-api/internal/mocks"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

const testSecret = "test-secret"

type ServerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	tenants   *mocks.TenantService
	customers *mocks.CustomerService
	users     *mocks.UserService
	userRoles *mocks.UserRoleService
	db        *mocks.Pinger
	redis     *redis.Client
	tenantID  uuid.UUID
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.tenants = mocks.NewTenantService(s.T())
	s.customers = mocks.NewCustomerService(s.T())
	s.users = mocks.NewUserService(s.T())
	s.userRoles = mocks.NewUserRoleService(s.T())
	s.db = mocks.NewPinger(s.T())
	s.tenantID = uuid.New()

	cfg := &config.Config{JWTSecretKey: testSecret, JWTExpirationHours: 1, DefaultRateLimit: 1000}
	log := logger.NewNop()

	// Nothing listens here; the limiter lets requests through when Redis fails
	s.redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})

	server := NewServer(
		newTestBase(),
		Services{Tenants: s.tenants, Customers: s.customers, Users: s.users, UserRoles: s.userRoles},
		s.db,
		mocks.NewChangeSubscriber(s.T()),
		middleware.NewAuthMiddleware(cfg),
		middleware.NewRateLimitMiddleware(s.redis, cfg, log),
		middleware.NewValidationMiddleware(log),
		0,
	)
	s.router = gin.New()
	server.SetupHealth(s.router)
	server.SetupRoutes(s.router.Group("/api/v1"))
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.redis.Close()
}

func (s *ServerTestSuite) token(roles ...string) string {
	token, err := middleware.GenerateToken(testSecret, time.Hour, uuid.NewString(), s.tenantID.String(), roles)
	s.Require().NoError(err)
	return token
}

func (s *ServerTestSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestHealthNeedsNoToken() {
	// Arrange
	s.db.On("Ping", mock.Anything).Return(nil)

	// Act
	w := s.do(http.MethodGet, "/health", "", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestMissingToken() {
	// Act
	w := s.do(http.MethodGet, "/api/v1/customers", "", "")

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *ServerTestSuite) TestTenantsAreAdminOnly() {
	// Act
	w := s.do(http.MethodGet, "/api/v1/tenants/active", s.token("manager"), "")

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ServerTestSuite) TestAdminReachesTenants() {
	// Arrange
	s.tenants.On("GetActive", mock.Anything).Return([]dto.TenantResponse{}, nil)

	// Act
	w := s.do(http.MethodGet, "/api/v1/tenants/active", s.token("admin"), "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestViewerCannotWriteCustomers() {
	// Act
	w := s.do(http.MethodDelete, "/api/v1/customers/"+uuid.NewString(), s.token("viewer"), "")

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ServerTestSuite) TestViewerReadsCustomersOfOwnTenant() {
	// Arrange
	s.customers.On("GetActive", mock.Anything, s.tenantID).Return([]dto.CustomerResponse{}, nil)

	// Act
	w := s.do(http.MethodGet, "/api/v1/customers/active", s.token("viewer"), "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestManagerCannotAssignRoles() {
	// Act
	body := `{"userId":"` + uuid.NewString() + `","roleId":"` + uuid.NewString() + `"}`
	w := s.do(http.MethodPost, "/api/v1/user-roles", s.token("manager"), body)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ServerTestSuite) TestStaticRoutesWinOverID() {
	// Arrange
	s.users.On("GetByEmail", mock.Anything, s.tenantID, "jane@acme.com").Return(&dto.UserResponse{Email: "jane@acme.com"}, nil)

	// Act
	w := s.do(http.MethodGet, "/api/v1/users/by-email?email=jane@acme.com", s.token(string(domain.RoleViewer)), "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
}
