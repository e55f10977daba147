package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// baseRepository implements repository.Repository[T] on top of a session.
// Entity repositories embed it and add their own queries.
type baseRepository[T any] struct {
	s *session
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.s.conn(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepository[T]) Add(entity *T) {
	r.s.stage(opInsert, entity)
}

func (r *baseRepository[T]) Update(entity *T) {
	r.s.stage(opUpdate, entity)
}

// GetAll reads the whole table. Meant for low-volume tables and tooling;
// request paths use the filtered or paged variants.
func (r *baseRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.s.readConn(ctx).Order("created_date DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// first runs a single-row query and maps "no rows" to nil.
func (r *baseRepository[T]) first(query *gorm.DB) (*T, error) {
	var entity T
	err := query.First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// find runs a list query newest first.
func (r *baseRepository[T]) find(query *gorm.DB) ([]T, error) {
	entities := make([]T, 0)
	if err := query.Order("created_date DESC").Order("id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
