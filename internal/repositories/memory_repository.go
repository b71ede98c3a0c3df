package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"microshop/internal/apperrors"
)

// MemoryRepository is an in-memory Repository used by tests. It applies the
// same id-assignment and timestamp rules as the GORM implementation.
type MemoryRepository[T any, PT Model[T]] struct {
	mu      sync.RWMutex
	records map[uuid.UUID]T
	clock   func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository[T any, PT Model[T]]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{
		records: make(map[uuid.UUID]T),
		clock:   time.Now,
	}
}

type stamper interface {
	StampCreated(time.Time)
	StampUpdated(time.Time)
}

// Create stores a copy of the entity, assigning id and timestamps.
func (r *MemoryRepository[T, PT]) Create(entity PT) (PT, error) {
	if entity == nil {
		return nil, fmt.Errorf("cannot create nil entity: %w", apperrors.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if entity.GetID() == uuid.Nil {
		entity.SetID(uuid.New())
	}
	if s, ok := any(entity).(stamper); ok {
		s.StampCreated(r.clock().UTC())
	}
	r.records[entity.GetID()] = *(*T)(entity)
	return entity, nil
}

// GetByID returns a copy of the matching record, or nil when absent.
func (r *MemoryRepository[T, PT]) GetByID(id uuid.UUID) (PT, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("empty id: %w", apperrors.ErrInvalidArgument)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// GetAll returns copies of every stored record, in no particular order.
func (r *MemoryRepository[T, PT]) GetAll() ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]T, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, nil
}

// Update overwrites an existing record and refreshes UpdatedAt.
func (r *MemoryRepository[T, PT]) Update(entity PT) (PT, error) {
	if entity == nil || entity.GetID() == uuid.Nil {
		return nil, fmt.Errorf("cannot update entity without id: %w", apperrors.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[entity.GetID()]; !ok {
		return nil, fmt.Errorf("record %s: %w", entity.GetID(), apperrors.ErrNotFound)
	}
	if s, ok := any(entity).(stamper); ok {
		s.StampUpdated(r.clock().UTC())
	}
	r.records[entity.GetID()] = *(*T)(entity)
	return entity, nil
}

// Delete removes a record, returning true iff one was removed.
func (r *MemoryRepository[T, PT]) Delete(id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("empty id: %w", apperrors.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return false, fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.records, id)
	return true, nil
}
