package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/repository"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

// CustomerService manages customers inside one tenant. Every method takes the
// caller's tenant; a customer owned by another tenant is reported as missing.
type CustomerService struct {
	changeNotifier
	store repository.Store
}

func NewCustomerService(store repository.Store, log *logger.Logger) *CustomerService {
	return &CustomerService{
		changeNotifier: newChangeNotifier(log),
		store:          store,
	}
}

func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := req.ToCustomer(tenantID)
	if err != nil {
		return nil, invalid(err)
	}
	customer.CreatedBy = utils.GetUserIDFromContext(ctx)

	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	if err := requireTenant(ctx, uow, tenantID); err != nil {
		return nil, err
	}

	unique, err := uow.Customers().IsCodeUnique(ctx, tenantID, customer.CustomerCode, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer code: %w", err)
	}
	if !unique {
		return nil, ErrCustomerCodeExists
	}

	uow.Customers().Add(customer)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrCustomerCodeExists)
	}

	s.notify(ctx, tenantID, EntityCustomer, ActionCreated, customer.ID)
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customer, err := s.load(ctx, uow, tenantID, id)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customer, err := uow.Customers().GetByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) ([]dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customers, err := uow.Customers().GetByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(customers), nil
}

func (s *CustomerService) List(ctx context.Context, filter domain.CustomerFilter) (*domain.Page[dto.CustomerResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	page, err := uow.Customers().GetPaged(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapPage(page, dto.FromCustomers), nil
}

func (s *CustomerService) Search(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customers, err := uow.Customers().Search(ctx, tenantID, term)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(customers), nil
}

func (s *CustomerService) GetActive(ctx context.Context, tenantID uuid.UUID) ([]dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customers, err := uow.Customers().GetActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(customers), nil
}

// Export returns every customer of the tenant, optionally narrowed by a search
// term, without paging.
func (s *CustomerService) Export(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	var (
		customers []domain.Customer
		err       error
	)
	if term == "" {
		customers, err = uow.Customers().GetByTenantID(ctx, tenantID)
	} else {
		customers, err = uow.Customers().Search(ctx, tenantID, term)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export customers: %w", err)
	}
	return dto.FromCustomers(customers), nil
}

func (s *CustomerService) Update(ctx context.Context, tenantID, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customer, err := s.load(ctx, uow, tenantID, id)
	if err != nil {
		return nil, err
	}

	previousCode := customer.CustomerCode
	if err := req.ApplyTo(customer); err != nil {
		return nil, invalid(err)
	}
	if customer.CustomerCode != previousCode {
		unique, err := uow.Customers().IsCodeUnique(ctx, tenantID, customer.CustomerCode, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check customer code: %w", err)
		}
		if !unique {
			return nil, ErrCustomerCodeExists
		}
	}

	customer.ModifiedBy = utils.GetUserIDFromContext(ctx)
	uow.Customers().Update(customer)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrCustomerCodeExists)
	}

	s.notify(ctx, tenantID, EntityCustomer, ActionUpdated, customer.ID)
	return dto.FromCustomer(customer), nil
}

// Delete soft-deletes the customer.
func (s *CustomerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	customer, err := s.load(ctx, uow, tenantID, id)
	if err != nil {
		return err
	}

	customer.Deactivate()
	customer.ModifiedBy = utils.GetUserIDFromContext(ctx)
	uow.Customers().Update(customer)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	s.notify(ctx, tenantID, EntityCustomer, ActionDeleted, id)
	return nil
}

func (s *CustomerService) load(ctx context.Context, uow repository.UnitOfWork, tenantID, id uuid.UUID) (*domain.Customer, error) {
	customer, err := uow.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.TenantID != tenantID {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// requireTenant rejects writes into a tenant that does not exist.
func requireTenant(ctx context.Context, uow repository.UnitOfWork, tenantID uuid.UUID) error {
	tenant, err := uow.Tenants().GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrTenantNotFound
	}
	return nil
}
