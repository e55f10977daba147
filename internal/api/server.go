package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/middleware"
)

const maxRequestBodyBytes = 10 * 1024 * 1024

type Services struct {
	Tenants   TenantService
	Customers CustomerService
	Users     UserService
	UserRoles UserRoleService
}

type Server struct {
	tenant     *TenantHandler
	customer   *CustomerHandler
	user       *UserHandler
	userRole   *UserRoleHandler
	health     *HealthHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

func NewServer(
	base *BaseHandler,
	services Services,
	db Pinger,
	subscriber ChangeSubscriber,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	globalRateLimit int,
) *Server {
	return &Server{
		tenant:     NewTenantHandler(base, services.Tenants),
		customer:   NewCustomerHandler(base, services.Customers),
		user:       NewUserHandler(base, services.Users),
		userRole:   NewUserRoleHandler(base, services.UserRoles),
		health:     NewHealthHandler(base, db),
		websocket:  NewWebSocketHandler(base, subscriber),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		globalRate: globalRateLimit,
	}
}

// SetupHealth registers the unauthenticated health probe on the root router.
func (s *Server) SetupHealth(router gin.IRoutes) {
	router.GET("/health", s.health.Health)
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(maxRequestBodyBytes))
	api.Use(s.validation.ValidateContentType("application/json"))

	if s.globalRate > 0 {
		api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))
	}

	authed := api.Group("", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
	writers := s.auth.RequireAnyRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := s.auth.RequireRole(domain.RoleAdmin)

	tenants := authed.Group("/tenants", adminOnly)
	{
		tenants.POST("", s.tenant.CreateTenant)
		tenants.GET("", s.tenant.ListTenants)
		tenants.GET("/search", s.tenant.SearchTenants)
		tenants.GET("/active", s.tenant.GetActiveTenants)
		tenants.GET("/by-code/:code", s.tenant.GetTenantByCode)
		tenants.GET("/by-email", s.tenant.GetTenantsByEmail)
		tenants.GET("/:id", s.tenant.GetTenant)
		tenants.PUT("/:id", s.tenant.UpdateTenant)
		tenants.DELETE("/:id", s.tenant.DeleteTenant)
	}

	customers := authed.Group("/customers")
	{
		customers.GET("", s.customer.ListCustomers)
		customers.GET("/search", s.customer.SearchCustomers)
		customers.GET("/active", s.customer.GetActiveCustomers)
		customers.GET("/by-code/:code", s.customer.GetCustomerByCode)
		customers.GET("/by-email", s.customer.GetCustomersByEmail)
		customers.GET("/export", writers, s.customer.ExportCustomers)
		customers.GET("/:id", s.customer.GetCustomer)
		customers.POST("", writers, s.customer.CreateCustomer)
		customers.PUT("/:id", writers, s.customer.UpdateCustomer)
		customers.DELETE("/:id", writers, s.customer.DeleteCustomer)
	}

	users := authed.Group("/users")
	{
		users.GET("", s.user.ListUsers)
		users.GET("/search", s.user.SearchUsers)
		users.GET("/active", s.user.GetActiveUsers)
		users.GET("/by-email", s.user.GetUserByEmail)
		users.GET("/:id", s.user.GetUser)
		users.POST("", writers, s.user.CreateUser)
		users.PUT("/:id", writers, s.user.UpdateUser)
		users.DELETE("/:id", writers, s.user.DeleteUser)
	}

	userRoles := authed.Group("/user-roles")
	{
		userRoles.GET("", s.userRole.ListUserRoles)
		userRoles.GET("/:id", s.userRole.GetUserRole)
		userRoles.POST("", adminOnly, s.userRole.AssignUserRole)
		userRoles.DELETE("/:id", adminOnly, s.userRole.RemoveUserRole)
	}

	authed.GET("/changes/stream", s.websocket.HandleWebSocket)
}

// StartWebSocketHub starts the hub that fans change events out to clients
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// StopWebSocketHub closes every tenant subscription
func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
