package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/repository"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

type UserService struct {
	changeNotifier
	store        repository.Store
	passwordCost int
}

func NewUserService(store repository.Store, log *logger.Logger) *UserService {
	return &UserService{
		changeNotifier: newChangeNotifier(log),
		store:          store,
		passwordCost:   bcrypt.DefaultCost,
	}
}

// Create adds the user and its initial role assignments in one transaction.
func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := req.ToUser(tenantID)
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	actor := utils.GetUserIDFromContext(ctx)
	user.CreatedBy = actor

	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	if err := uow.BeginTransaction(ctx); err != nil {
		return nil, err
	}
	if err := requireTenant(ctx, uow, tenantID); err != nil {
		return nil, err
	}

	unique, err := uow.Users().IsEmailUnique(ctx, tenantID, user.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if !unique {
		return nil, ErrEmailAlreadyExists
	}

	// Role rows reference the user, so the id is fixed before staging.
	user.EnsureID()
	uow.Users().Add(user)
	roleIDs := distinctIDs(req.RoleIDs)
	for _, roleID := range roleIDs {
		uow.UserRoles().Add(&domain.UserRole{
			UserID:        user.ID,
			RoleID:        roleID,
			CreationAudit: domain.CreationAudit{CreatedBy: actor},
		})
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrEmailAlreadyExists)
	}

	s.notify(ctx, tenantID, EntityUser, ActionCreated, user.ID)
	resp := dto.FromUser(user)
	resp.RoleIDs = roleIDs
	return resp, nil
}

// GetByID returns the user together with the ids of its assigned roles.
func (s *UserService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	user, err := loadUser(ctx, uow, tenantID, id)
	if err != nil {
		return nil, err
	}

	roles, err := uow.UserRoles().GetByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user roles: %w", err)
	}

	resp := dto.FromUser(user)
	for _, role := range roles {
		resp.RoleIDs = append(resp.RoleIDs, role.RoleID)
	}
	return resp, nil
}

func (s *UserService) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*dto.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	user, err := uow.Users().GetByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return dto.FromUser(user), nil
}

func (s *UserService) List(ctx context.Context, filter domain.UserFilter) (*domain.Page[dto.UserResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	page, err := uow.Users().GetPaged(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapPage(page, dto.FromUsers), nil
}

func (s *UserService) Search(ctx context.Context, tenantID uuid.UUID, term string) ([]dto.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	users, err := uow.Users().Search(ctx, tenantID, term)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

func (s *UserService) GetActive(ctx context.Context, tenantID uuid.UUID) ([]dto.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	users, err := uow.Users().GetActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

func (s *UserService) Update(ctx context.Context, tenantID, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	user, err := loadUser(ctx, uow, tenantID, id)
	if err != nil {
		return nil, err
	}

	previousEmail := user.Email
	if err := req.ApplyTo(user); err != nil {
		return nil, invalid(err)
	}
	if user.Email != previousEmail {
		unique, err := uow.Users().IsEmailUnique(ctx, tenantID, user.Email, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check user email: %w", err)
		}
		if !unique {
			return nil, ErrEmailAlreadyExists
		}
	}
	if password := req.PasswordValue(); password != "" {
		hash, err := s.hashPassword(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.ModifiedBy = utils.GetUserIDFromContext(ctx)
	uow.Users().Update(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, conflictOnDuplicate(err, ErrEmailAlreadyExists)
	}

	s.notify(ctx, tenantID, EntityUser, ActionUpdated, user.ID)
	return dto.FromUser(user), nil
}

// Delete soft-deletes the user. Role assignments are kept.
func (s *UserService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	uow := s.store.NewUnitOfWork()
	defer uow.Close()

	user, err := loadUser(ctx, uow, tenantID, id)
	if err != nil {
		return err
	}

	user.Deactivate()
	user.ModifiedBy = utils.GetUserIDFromContext(ctx)
	uow.Users().Update(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	s.notify(ctx, tenantID, EntityUser, ActionDeleted, id)
	return nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", invalid(dto.NewValidationError("password must be at most 72 bytes"))
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func loadUser(ctx context.Context, uow repository.UnitOfWork, tenantID, id uuid.UUID) (*domain.User, error) {
	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
