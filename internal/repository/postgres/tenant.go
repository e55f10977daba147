package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

var tenantSearchColumns = []string{"name", "code", "contact_email"}

type TenantRepository struct {
	baseRepository[domain.Tenant]
}

func newTenantRepository(s *session) *TenantRepository {
	return &TenantRepository{baseRepository[domain.Tenant]{s: s}}
}

func (r *TenantRepository) GetByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	return r.first(r.s.conn(ctx).Where("code = ?", code))
}

func (r *TenantRepository) GetByContactEmail(ctx context.Context, email string) ([]domain.Tenant, error) {
	return r.find(r.s.readConn(ctx).Where("LOWER(contact_email) = LOWER(?)", email))
}

func (r *TenantRepository) GetActive(ctx context.Context) ([]domain.Tenant, error) {
	return r.find(activeOnly(r.s.readConn(ctx)))
}

func (r *TenantRepository) Search(ctx context.Context, term string) ([]domain.Tenant, error) {
	return r.find(matchAny(r.s.readConn(ctx), term, tenantSearchColumns...))
}

func (r *TenantRepository) IsCodeUnique(ctx context.Context, code string, excludeTenantID *uuid.UUID) (bool, error) {
	var count int64
	query := excludeID(r.s.conn(ctx).Model(&domain.Tenant{}).Where("code = ?", code), excludeTenantID)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *TenantRepository) GetPaged(ctx context.Context, filter domain.TenantFilter) (*domain.Page[domain.Tenant], error) {
	return findPage[domain.Tenant](r.s.readConn(ctx), func(db *gorm.DB) *gorm.DB {
		db = matchAny(db, filter.SearchTerm, tenantSearchColumns...)
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}, filter.PageRequest)
}
