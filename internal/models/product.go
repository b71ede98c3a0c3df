package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Every product belongs to exactly one
// category.
type Product struct {
	Entity
	Name        string          `json:"name" gorm:"type:varchar(50)"`
	Description string          `json:"description" gorm:"type:varchar(500)"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	CategoryID  uuid.UUID       `json:"category_id" gorm:"type:varchar(36);index"`
}
