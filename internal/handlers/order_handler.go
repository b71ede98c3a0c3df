package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"microshop/internal/models"
	"microshop/pkg/validation"
)

// OrderItemRequest is one submitted order line.
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required,gt=0"`
}

// OrderRegistrationRequest is the POST payload for orders.
type OrderRegistrationRequest struct {
	UserID            uuid.UUID          `json:"user_id" validate:"required"`
	DeliveryAddressID uuid.UUID          `json:"delivery_address_id" validate:"required"`
	Items             []OrderItemRequest `json:"items" validate:"omitempty,dive"`
}

// OrderUpdateRequest overlays submitted fields onto the stored order. A
// submitted item list replaces the stored one wholesale.
type OrderUpdateRequest struct {
	UserID            *uuid.UUID          `json:"user_id" validate:"omitempty"`
	DeliveryAddressID *uuid.UUID          `json:"delivery_address_id" validate:"omitempty"`
	Items             *[]OrderItemRequest `json:"items" validate:"omitempty,dive"`
}

// OrderItemResponse carries the derived line total.
type OrderItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	UserID            uuid.UUID           `json:"user_id"`
	DeliveryAddressID uuid.UUID           `json:"delivery_address_id"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// NewOrderHandler wires the order resource.
func NewOrderHandler(service Crud[models.Order, *models.Order], log *logrus.Logger) *CrudHandler[models.Order, *models.Order] {
	binder := Binder[models.Order, *models.Order]{
		Decode: func(c *fiber.Ctx) (*models.Order, []validation.FieldError, error) {
			var req OrderRegistrationRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return nil, fieldErrs, nil
			}
			return &models.Order{
				UserID:            req.UserID,
				DeliveryAddressID: req.DeliveryAddressID,
				Items:             toOrderItems(req.Items),
			}, nil, nil
		},
		Merge: func(c *fiber.Ctx, order *models.Order) ([]validation.FieldError, error) {
			var req OrderUpdateRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return fieldErrs, nil
			}
			if req.UserID != nil {
				order.UserID = *req.UserID
			}
			if req.DeliveryAddressID != nil {
				order.DeliveryAddressID = *req.DeliveryAddressID
			}
			if req.Items != nil {
				order.Items = toOrderItems(*req.Items)
			}
			return nil, nil
		},
		Respond: func(order *models.Order) interface{} {
			items := make([]OrderItemResponse, 0, len(order.Items))
			for _, item := range order.Items {
				items = append(items, OrderItemResponse{
					ID:         item.ID,
					ProductID:  item.ProductID,
					Quantity:   item.Quantity,
					UnitPrice:  item.UnitPrice,
					TotalPrice: item.TotalPrice(),
				})
			}
			return OrderResponse{
				ID:                order.ID,
				UserID:            order.UserID,
				DeliveryAddressID: order.DeliveryAddressID,
				Items:             items,
				CreatedAt:         order.CreatedAt,
				UpdatedAt:         order.UpdatedAt,
			}
		},
	}
	return NewCrudHandler("orders", service, binder, log)
}

func toOrderItems(reqs []OrderItemRequest) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, models.OrderItem{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
		})
	}
	return items
}
