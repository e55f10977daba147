package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

var customerSearchColumns = []string{"first_name", "last_name", "company_name", "email", "customer_code"}

type CustomerRepository struct {
	baseRepository[domain.Customer]
}

func newCustomerRepository(s *session) *CustomerRepository {
	return &CustomerRepository{baseRepository[domain.Customer]{s: s}}
}

func (r *CustomerRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Customer, error) {
	return r.first(scopeTenant(r.s.conn(ctx), tenantID).Where("customer_code = ?", code))
}

func (r *CustomerRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	return r.find(scopeTenant(r.s.readConn(ctx), tenantID))
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) ([]domain.Customer, error) {
	return r.find(scopeTenant(r.s.readConn(ctx), tenantID).Where("LOWER(email) = LOWER(?)", email))
}

func (r *CustomerRepository) GetActive(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	return r.find(activeOnly(scopeTenant(r.s.readConn(ctx), tenantID)))
}

func (r *CustomerRepository) Search(ctx context.Context, tenantID uuid.UUID, term string) ([]domain.Customer, error) {
	return r.find(matchAny(scopeTenant(r.s.readConn(ctx), tenantID), term, customerSearchColumns...))
}

func (r *CustomerRepository) IsCodeUnique(ctx context.Context, tenantID uuid.UUID, code string, excludeCustomerID *uuid.UUID) (bool, error) {
	var count int64
	query := scopeTenant(r.s.conn(ctx).Model(&domain.Customer{}), tenantID).Where("customer_code = ?", code)
	if err := excludeID(query, excludeCustomerID).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *CustomerRepository) GetPaged(ctx context.Context, filter domain.CustomerFilter) (*domain.Page[domain.Customer], error) {
	return findPage[domain.Customer](r.s.readConn(ctx), func(db *gorm.DB) *gorm.DB {
		db = scopeTenant(db, filter.TenantID)
		db = matchAny(db, filter.SearchTerm, customerSearchColumns...)
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.Segment != "" {
			db = db.Where("segment = ?", filter.Segment)
		}
		if filter.CustomerType != "" {
			db = db.Where("customer_type = ?", filter.CustomerType)
		}
		return db
	}, filter.PageRequest)
}
