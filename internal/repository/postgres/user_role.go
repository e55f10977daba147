package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

type UserRoleRepository struct {
	baseRepository[domain.UserRole]
}

func newUserRoleRepository(s *session) *UserRoleRepository {
	return &UserRoleRepository{baseRepository[domain.UserRole]{s: s}}
}

func (r *UserRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserRole, error) {
	return r.find(r.s.readConn(ctx).Where("user_id = ?", userID))
}

func (r *UserRoleRepository) Exists(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	var count int64
	err := r.s.conn(ctx).Model(&domain.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRoleRepository) Remove(entity *domain.UserRole) {
	r.s.stage(opDelete, entity)
}

func (r *UserRoleRepository) GetPaged(ctx context.Context, filter domain.UserRoleFilter) (*domain.Page[domain.UserRole], error) {
	return findPage[domain.UserRole](r.s.readConn(ctx), func(db *gorm.DB) *gorm.DB {
		if filter.UserID != uuid.Nil {
			db = db.Where("user_id = ?", filter.UserID)
		}
		return db
	}, filter.PageRequest)
}
