package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity is the common shape shared by every persisted domain record. The
// audit timestamps are maintained by GORM inside the save itself; callers
// never assign them, so CreatedAt <= UpdatedAt holds for every record.
type Entity struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the identifier at first persist. The hook also runs
// for child records created through their aggregate root.
func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *Entity) GetID() uuid.UUID { return e.ID }

func (e *Entity) SetID(id uuid.UUID) { e.ID = id }

// StampCreated sets both audit timestamps to the given instant. Used by
// stores that do not run GORM's create callback.
func (e *Entity) StampCreated(t time.Time) {
	e.CreatedAt = t
	e.UpdatedAt = t
}

// StampUpdated refreshes UpdatedAt only.
func (e *Entity) StampUpdated(t time.Time) {
	e.UpdatedAt = t
}
