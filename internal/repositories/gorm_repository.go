package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"microshop/internal/apperrors"
)

// GormRepository is the GORM-backed Repository implementation. Preloads and
// the cascade hook are fixed at construction, one instance per entity type.
type GormRepository[T any, PT Model[T]] struct {
	db       *gorm.DB
	preloads []string
	cascade  func(tx *gorm.DB, id uuid.UUID) error
}

// GormOption configures a GormRepository at construction.
type GormOption[T any, PT Model[T]] func(*GormRepository[T, PT])

// WithPreloads eagerly loads the named child collections on every read.
func WithPreloads[T any, PT Model[T]](names ...string) GormOption[T, PT] {
	return func(r *GormRepository[T, PT]) { r.preloads = names }
}

// WithCascade registers a hook run inside the delete transaction before the
// parent row is removed. Children must not outlive their aggregate root.
func WithCascade[T any, PT Model[T]](fn func(tx *gorm.DB, id uuid.UUID) error) GormOption[T, PT] {
	return func(r *GormRepository[T, PT]) { r.cascade = fn }
}

// NewGormRepository creates a repository for one entity type.
func NewGormRepository[T any, PT Model[T]](db *gorm.DB, opts ...GormOption[T, PT]) *GormRepository[T, PT] {
	r := &GormRepository[T, PT]{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *GormRepository[T, PT]) read() *gorm.DB {
	tx := r.db
	for _, name := range r.preloads {
		tx = tx.Preload(name)
	}
	return tx
}

// Create persists a new entity and returns the stored representation. The id
// and audit timestamps are assigned by the save itself, never by the caller.
func (r *GormRepository[T, PT]) Create(entity PT) (PT, error) {
	if entity == nil {
		return nil, fmt.Errorf("cannot create nil entity: %w", apperrors.ErrInvalidArgument)
	}
	if err := r.db.Create(entity).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return entity, nil
}

// GetByID returns the matching record, or nil when it does not exist.
func (r *GormRepository[T, PT]) GetByID(id uuid.UUID) (PT, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("empty id: %w", apperrors.ErrInvalidArgument)
	}
	var entity T
	err := r.read().First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}
	return &entity, nil
}

// GetAll returns every record; an empty store yields an empty slice.
func (r *GormRepository[T, PT]) GetAll() ([]T, error) {
	entities := make([]T, 0)
	if err := r.read().Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return entities, nil
}

// Update overwrites the stored fields of an existing record and refreshes
// UpdatedAt as part of the save. Save falls back to an insert when its
// update matches no rows, so existence is checked in the same transaction
// and a vanished record stays an ErrNotFound instead of reappearing.
func (r *GormRepository[T, PT]) Update(entity PT) (PT, error) {
	if entity == nil || entity.GetID() == uuid.Nil {
		return nil, fmt.Errorf("cannot update entity without id: %w", apperrors.ErrInvalidArgument)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("id = ?", entity.GetID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("record %s: %w", entity.GetID(), apperrors.ErrNotFound)
		}
		return tx.Save(entity).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update record %s: %w", entity.GetID(), err)
	}
	return entity, nil
}

// Delete removes the record and, for aggregate roots, its children in the
// same transaction. Returns true iff a record was removed.
func (r *GormRepository[T, PT]) Delete(id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("empty id: %w", apperrors.ErrInvalidArgument)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if r.cascade != nil {
			if err := r.cascade(tx, id); err != nil {
				return err
			}
		}
		var entity T
		res := tx.Delete(&entity, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	return true, nil
}
