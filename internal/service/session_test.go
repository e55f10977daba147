package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/mocks"
	"github.com/kingrain94/saas-platform-api/internal/utils"
)

// sessionMocks wires a mocked Store to a mocked UnitOfWork and its
// repositories, the way every service opens its session.
type sessionMocks struct {
	store     *mocks.Store
	uow       *mocks.UnitOfWork
	tenants   *mocks.TenantRepository
	customers *mocks.CustomerRepository
	users     *mocks.UserRepository
	userRoles *mocks.UserRoleRepository
	publisher *mocks.ChangePublisher
}

func newSessionMocks() *sessionMocks {
	m := &sessionMocks{
		store:     new(mocks.Store),
		uow:       new(mocks.UnitOfWork),
		tenants:   new(mocks.TenantRepository),
		customers: new(mocks.CustomerRepository),
		users:     new(mocks.UserRepository),
		userRoles: new(mocks.UserRoleRepository),
		publisher: new(mocks.ChangePublisher),
	}
	m.uow.On("Tenants").Return(m.tenants).Maybe()
	m.uow.On("Customers").Return(m.customers).Maybe()
	m.uow.On("Users").Return(m.users).Maybe()
	m.uow.On("UserRoles").Return(m.userRoles).Maybe()
	return m
}

// expectSession expects exactly one unit of work to be opened and closed.
func (m *sessionMocks) expectSession() {
	m.store.On("NewUnitOfWork").Return(m.uow).Once()
	m.uow.On("Close").Return(nil).Once()
}

func (m *sessionMocks) expectEvent(entity, action string) {
	m.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *dto.ChangeEvent) bool {
		return e.Entity == entity && e.Action == action
	})).Return(nil).Once()
}

func (m *sessionMocks) assertExpectations(t *testing.T) {
	mock.AssertExpectationsForObjects(t, m.store, m.uow, m.tenants, m.customers, m.users, m.userRoles, m.publisher)
}

func actorContext(actor uuid.UUID) context.Context {
	return context.WithValue(context.Background(), utils.ClaimsKey, jwt.MapClaims{
		"user_id": actor.String(),
	})
}
