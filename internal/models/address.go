package models

import "github.com/google/uuid"

// Address is a standalone mailing address belonging to a user.
type Address struct {
	Entity
	UserID  uuid.UUID `json:"user_id" gorm:"type:varchar(36);index"`
	Street  string    `json:"street" gorm:"type:varchar(255)"`
	City    string    `json:"city" gorm:"type:varchar(100)"`
	State   string    `json:"state" gorm:"type:varchar(100)"`
	Country string    `json:"country" gorm:"type:varchar(100)"`
	ZipCode string    `json:"zip_code" gorm:"type:varchar(20)"`
}
