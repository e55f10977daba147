package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

var userSearchColumns = []string{"first_name", "last_name", "email", "user_name"}

type UserRepository struct {
	baseRepository[domain.User]
}

func newUserRepository(s *session) *UserRepository {
	return &UserRepository{baseRepository[domain.User]{s: s}}
}

func (r *UserRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]domain.User, error) {
	return r.find(scopeTenant(r.s.readConn(ctx), tenantID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	return r.first(scopeTenant(r.s.conn(ctx), tenantID).Where("LOWER(email) = LOWER(?)", email))
}

// GetActive lists users with the active flag set. Users have no status column.
func (r *UserRepository) GetActive(ctx context.Context, tenantID uuid.UUID) ([]domain.User, error) {
	return r.find(scopeTenant(r.s.readConn(ctx), tenantID).Where("is_active = ?", true))
}

func (r *UserRepository) Search(ctx context.Context, tenantID uuid.UUID, term string) ([]domain.User, error) {
	return r.find(matchAny(scopeTenant(r.s.readConn(ctx), tenantID), term, userSearchColumns...))
}

func (r *UserRepository) IsEmailUnique(ctx context.Context, tenantID uuid.UUID, email string, excludeUserID *uuid.UUID) (bool, error) {
	var count int64
	query := scopeTenant(r.s.conn(ctx).Model(&domain.User{}), tenantID).Where("LOWER(email) = LOWER(?)", email)
	if err := excludeID(query, excludeUserID).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *UserRepository) GetPaged(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error) {
	return findPage[domain.User](r.s.readConn(ctx), func(db *gorm.DB) *gorm.DB {
		db = scopeTenant(db, filter.TenantID)
		db = matchAny(db, filter.SearchTerm, userSearchColumns...)
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		return db
	}, filter.PageRequest)
}
