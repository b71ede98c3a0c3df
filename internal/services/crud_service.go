package services

import (
	"fmt"

	"github.com/google/uuid"

	"microshop/internal/apperrors"
	"microshop/internal/repositories"
)

// CrudService is the guard layer between handlers and a repository. It
// rejects empty arguments before any store call and otherwise delegates 1:1;
// no business rules live here. Instances are stateless and safe for
// concurrent use.
type CrudService[T any, PT repositories.Model[T]] struct {
	repo repositories.Repository[T, PT]
}

// NewCrudService creates the guard layer over a repository.
func NewCrudService[T any, PT repositories.Model[T]](repo repositories.Repository[T, PT]) *CrudService[T, PT] {
	return &CrudService[T, PT]{repo: repo}
}

func (s *CrudService[T, PT]) Create(entity PT) (PT, error) {
	if entity == nil {
		return nil, fmt.Errorf("entity is required: %w", apperrors.ErrInvalidArgument)
	}
	return s.repo.Create(entity)
}

func (s *CrudService[T, PT]) GetByID(id uuid.UUID) (PT, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id is required: %w", apperrors.ErrInvalidArgument)
	}
	return s.repo.GetByID(id)
}

// GetAll delegates unguarded; listing takes no arguments to validate.
func (s *CrudService[T, PT]) GetAll() ([]T, error) {
	return s.repo.GetAll()
}

func (s *CrudService[T, PT]) Update(entity PT) (PT, error) {
	if entity == nil || entity.GetID() == uuid.Nil {
		return nil, fmt.Errorf("entity with id is required: %w", apperrors.ErrInvalidArgument)
	}
	return s.repo.Update(entity)
}

func (s *CrudService[T, PT]) Delete(id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("id is required: %w", apperrors.ErrInvalidArgument)
	}
	return s.repo.Delete(id)
}
