package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every entity error wraps exactly one of them so callers can
// classify with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Error is an entity-level failure whose message is safe to show to callers.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	// Tenant errors
	ErrTenantNotFound   = &Error{Kind: ErrNotFound, Message: "tenant not found"}
	ErrTenantCodeExists = &Error{Kind: ErrConflict, Message: "tenant code already exists"}

	// Customer errors
	ErrCustomerNotFound   = &Error{Kind: ErrNotFound, Message: "customer not found"}
	ErrCustomerCodeExists = &Error{Kind: ErrConflict, Message: "customer code already exists in this tenant"}

	// User errors
	ErrUserNotFound       = &Error{Kind: ErrNotFound, Message: "user not found"}
	ErrEmailAlreadyExists = &Error{Kind: ErrConflict, Message: "email already exists in this tenant"}

	// User role errors
	ErrUserRoleNotFound = &Error{Kind: ErrNotFound, Message: "user role not found"}
	ErrUserRoleExists   = &Error{Kind: ErrConflict, Message: "role already assigned to user"}
)

// invalid wraps a request-level failure, usually a *dto.ValidationError, so
// it classifies as ErrValidation while keeping the field messages reachable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// conflictOnDuplicate maps a unique-constraint violation raised by the store
// to the entity's conflict error. Uniqueness is checked before writing, so this
// only fires when a concurrent request wins the race.
func conflictOnDuplicate(err error, conflict *Error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
