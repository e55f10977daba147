package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/repository"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

type TenantService struct {
	changeNotifier
	store repository.Store
}

func NewTenantService(store repository.Store, log *logger.Logger) *TenantService {
	return &TenantService{
		changeNotifier: newChangeNotifier(log),
		store:          store,
	}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := req.ToTenant()
	if err != nil {
		return nil, invalid(err)
	}
	tenant.CreatedBy = utils.GetUserIDFromContext(ctx)

	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	unique, err := uow.Tenants().IsCodeUnique(ctx, tenant.Code, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check tenant code: %w", err)
	}
	if !unique {
		return nil, ErrTenantCodeExists
	}

	uow.Tenants().Add(tenant)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrTenantCodeExists)
	}

	s.notify(ctx, tenant.ID, EntityTenant, ActionCreated, tenant.ID)
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenant, err := uow.Tenants().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByCode(ctx context.Context, code string) (*dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenant, err := uow.Tenants().GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByContactEmail(ctx context.Context, email string) ([]dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenants, err := uow.Tenants().GetByContactEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

func (s *TenantService) List(ctx context.Context, filter domain.TenantFilter) (*domain.Page[dto.TenantResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	page, err := uow.Tenants().GetPaged(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapPage(page, dto.FromTenants), nil
}

func (s *TenantService) Search(ctx context.Context, term string) ([]dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenants, err := uow.Tenants().Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

func (s *TenantService) GetActive(ctx context.Context) ([]dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenants, err := uow.Tenants().GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	tenant, err := uow.Tenants().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	previousCode := tenant.Code
	if err := req.ApplyTo(tenant); err != nil {
		return nil, invalid(err)
	}
	if tenant.Code != previousCode {
		unique, err := uow.Tenants().IsCodeUnique(ctx, tenant.Code, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check tenant code: %w", err)
		}
		if !unique {
			return nil, ErrTenantCodeExists
		}
	}

	tenant.ModifiedBy = utils.GetUserIDFromContext(ctx)
	uow.Tenants().Update(tenant)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrTenantCodeExists)
	}

	s.notify(ctx, tenant.ID, EntityTenant, ActionUpdated, tenant.ID)
	return dto.FromTenant(tenant), nil
}

// Delete deactivates the tenant and every user it owns in one transaction.
// Customers keep their own lifecycle.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	if err := uow.BeginTransaction(ctx); err != nil {
		return err
	}

	tenant, err := uow.Tenants().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrTenantNotFound
	}

	actor := utils.GetUserIDFromContext(ctx)
	tenant.Deactivate()
	tenant.ModifiedBy = actor
	uow.Tenants().Update(tenant)

	users, err := uow.Users().GetByTenantID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load tenant users: %w", err)
	}
	deactivated := 0
	for i := range users {
		if !users[i].IsActive {
			continue
		}
		users[i].Deactivate()
		users[i].ModifiedBy = actor
		uow.Users().Update(&users[i])
		deactivated++
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info("tenant deactivated",
		zap.String("tenant_id", id.String()),
		zap.Int("users_deactivated", deactivated))
	s.notify(ctx, id, EntityTenant, ActionDeleted, id)
	return nil
}
