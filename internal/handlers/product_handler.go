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

// ProductRegistrationRequest is the POST payload for products.
type ProductRegistrationRequest struct {
	Name        string          `json:"name" validate:"required,max=50"`
	Description string          `json:"description" validate:"required,min=10,max=500"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
}

// ProductUpdateRequest overlays submitted fields onto the stored product.
type ProductUpdateRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=50"`
	Description *string          `json:"description" validate:"omitempty,min=10,max=500"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	CategoryID  *uuid.UUID       `json:"category_id" validate:"omitempty"`
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProductHandler wires the product resource.
func NewProductHandler(service Crud[models.Product, *models.Product], log *logrus.Logger) *CrudHandler[models.Product, *models.Product] {
	binder := Binder[models.Product, *models.Product]{
		Decode: func(c *fiber.Ctx) (*models.Product, []validation.FieldError, error) {
			var req ProductRegistrationRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return nil, fieldErrs, nil
			}
			return &models.Product{
				Name:        req.Name,
				Description: req.Description,
				Price:       req.Price,
				CategoryID:  req.CategoryID,
			}, nil, nil
		},
		Merge: func(c *fiber.Ctx, product *models.Product) ([]validation.FieldError, error) {
			var req ProductUpdateRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return fieldErrs, nil
			}
			if req.Name != nil {
				product.Name = *req.Name
			}
			if req.Description != nil {
				product.Description = *req.Description
			}
			if req.Price != nil {
				product.Price = *req.Price
			}
			if req.CategoryID != nil {
				product.CategoryID = *req.CategoryID
			}
			return nil, nil
		},
		Respond: func(product *models.Product) interface{} {
			return ProductResponse{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Price:       product.Price,
				CategoryID:  product.CategoryID,
				CreatedAt:   product.CreatedAt,
				UpdatedAt:   product.UpdatedAt,
			}
		},
	}
	return NewCrudHandler("products", service, binder, log)
}
