package repositories

import "github.com/google/uuid"

// Model constrains a pointer to a domain struct embedding models.Entity.
type Model[T any] interface {
	*T
	GetID() uuid.UUID
	SetID(uuid.UUID)
}

// Repository is the store contract, instantiated once per entity type. It is
// the sole authority translating domain operations into store reads/writes.
//
// GetByID returns (nil, nil) for an absent record; absence on the read path
// is not an error. Update and Delete report a missing record as
// apperrors.ErrNotFound, and Delete returns true iff a record was removed.
type Repository[T any, PT Model[T]] interface {
	Create(entity PT) (PT, error)
	GetByID(id uuid.UUID) (PT, error)
	GetAll() ([]T, error)
	Update(entity PT) (PT, error)
	Delete(id uuid.UUID) (bool, error)
}
