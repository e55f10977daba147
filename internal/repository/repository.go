package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

var (
	ErrUnitOfWorkClosed      = errors.New("unit of work is closed")
	ErrTransactionInProgress = errors.New("transaction already in progress")
)

// Repository is the CRUD primitive every entity repository builds on.
// Add and Update only stage changes; nothing reaches the store until the
// owning UnitOfWork flushes.
type Repository[T any] interface {
	// GetByID returns nil without an error when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Add(entity *T)
	Update(entity *T)
	GetAll(ctx context.Context) ([]T, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Repository[domain.Tenant]
	GetByCode(ctx context.Context, code string) (*domain.Tenant, error)
	GetByContactEmail(ctx context.Context, email string) ([]domain.Tenant, error)
	GetActive(ctx context.Context) ([]domain.Tenant, error)
	Search(ctx context.Context, term string) ([]domain.Tenant, error)
	// IsCodeUnique reports whether no tenant other than excludeID uses code.
	// Tenant codes are unique across the whole system.
	IsCodeUnique(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error)
	GetPaged(ctx context.Context, filter domain.TenantFilter) (*domain.Page[domain.Tenant], error)
}

//go:generate mockery --name CustomerRepository --output ../mocks
type CustomerRepository interface {
	Repository[domain.Customer]
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Customer, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) ([]domain.Customer, error)
	GetActive(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error)
	Search(ctx context.Context, tenantID uuid.UUID, term string) ([]domain.Customer, error)
	IsCodeUnique(ctx context.Context, tenantID uuid.UUID, code string, excludeID *uuid.UUID) (bool, error)
	GetPaged(ctx context.Context, filter domain.CustomerFilter) (*domain.Page[domain.Customer], error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Repository[domain.User]
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	GetActive(ctx context.Context, tenantID uuid.UUID) ([]domain.User, error)
	Search(ctx context.Context, tenantID uuid.UUID, term string) ([]domain.User, error)
	IsEmailUnique(ctx context.Context, tenantID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error)
	GetPaged(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error)
}

//go:generate mockery --name UserRoleRepository --output ../mocks
type UserRoleRepository interface {
	Repository[domain.UserRole]
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserRole, error)
	Exists(ctx context.Context, userID, roleID uuid.UUID) (bool, error)
	// Remove stages deletion of the association row.
	Remove(entity *domain.UserRole)
	GetPaged(ctx context.Context, filter domain.UserRoleFilter) (*domain.Page[domain.UserRole], error)
}

// UnitOfWork is one persistence session. All repositories it hands out share
// the session, so changes staged through any of them are flushed together.
// A UnitOfWork is not safe for concurrent use.
//
//go:generate mockery --name UnitOfWork --output ../mocks
type UnitOfWork interface {
	Tenants() TenantRepository
	Customers() CustomerRepository
	Users() UserRepository
	UserRoles() UserRoleRepository

	// SaveChanges flushes staged changes and returns the number of affected
	// rows. Outside an explicit transaction the flush is atomic on its own.
	SaveChanges(ctx context.Context) (int64, error)
	BeginTransaction(ctx context.Context) error
	// Commit flushes pending changes and commits. Any failure rolls the
	// transaction back before the error is returned.
	Commit(ctx context.Context) error
	Rollback() error
	InTransaction() bool
	// Close releases the session and any open transaction. Safe to call more
	// than once.
	Close() error
}

//go:generate mockery --name Store --output ../mocks
type Store interface {
	NewUnitOfWork() UnitOfWork
	Ping(ctx context.Context) error
}
