package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an aggregate root owning its items; items cannot outlive the
// order they belong to.
type Order struct {
	Entity
	UserID            uuid.UUID   `json:"user_id" gorm:"type:varchar(36);index"`
	DeliveryAddressID uuid.UUID   `json:"delivery_address_id" gorm:"type:varchar(36)"`
	Items             []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is one line of an order, priced at order time.
type OrderItem struct {
	Entity
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
}

// TotalPrice is derived on read and never stored.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
