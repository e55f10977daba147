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

// UserRoleService assigns roles to users. An assignment belongs to the tenant
// of its user.
type UserRoleService struct {
	changeNotifier
	store repository.Store
}

func NewUserRoleService(store repository.Store, log *logger.Logger) *UserRoleService {
	return &UserRoleService{
		changeNotifier: newChangeNotifier(log),
		store:          store,
	}
}

func (s *UserRoleService) List(ctx context.Context, tenantID uuid.UUID, filter domain.UserRoleFilter) (*domain.Page[dto.UserRoleResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	if _, err := loadUser(ctx, uow, tenantID, filter.UserID); err != nil {
		return nil, err
	}

	page, err := uow.UserRoles().GetPaged(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapPage(page, dto.FromUserRoles), nil
}

func (s *UserRoleService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.UserRoleResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	role, err := s.load(ctx, uow, tenantID, id)
	if err != nil {
		return nil, err
	}
	return dto.FromUserRole(role), nil
}

func (s *UserRoleService) Assign(ctx context.Context, tenantID uuid.UUID, req dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	if _, err := loadUser(ctx, uow, tenantID, req.UserID); err != nil {
		return nil, err
	}

	exists, err := uow.UserRoles().Exists(ctx, req.UserID, req.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check role assignment: %w", err)
	}
	if exists {
		return nil, ErrUserRoleExists
	}

	role := req.ToUserRole()
	role.CreatedBy = utils.GetUserIDFromContext(ctx)
	uow.UserRoles().Add(role)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrUserRoleExists)
	}

	s.notify(ctx, tenantID, EntityUserRole, ActionCreated, role.ID)
	return dto.FromUserRole(role), nil
}

// Remove deletes the assignment row.
func (s *UserRoleService) Remove(ctx context.Context, tenantID, id uuid.UUID) error {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	role, err := s.load(ctx, uow, tenantID, id)
	if err != nil {
		return err
	}

	uow.UserRoles().Remove(role)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	s.notify(ctx, tenantID, EntityUserRole, ActionDeleted, id)
	return nil
}

func (s *UserRoleService) load(ctx context.Context, uow repository.UnitOfWork, tenantID, id uuid.UUID) (*domain.UserRole, error) {
	role, err := uow.UserRoles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrUserRoleNotFound
	}

	user, err := uow.Users().GetByID(ctx, role.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, ErrUserRoleNotFound
	}
	return role, nil
}
