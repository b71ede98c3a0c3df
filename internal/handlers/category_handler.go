package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"microshop/internal/models"
	"microshop/pkg/validation"
)

// CategoryRegistrationRequest is the POST payload for categories.
type CategoryRegistrationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryUpdateRequest overlays submitted fields onto the stored category.
type CategoryUpdateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategoryHandler wires the category resource.
func NewCategoryHandler(service Crud[models.Category, *models.Category], log *logrus.Logger) *CrudHandler[models.Category, *models.Category] {
	binder := Binder[models.Category, *models.Category]{
		Decode: func(c *fiber.Ctx) (*models.Category, []validation.FieldError, error) {
			var req CategoryRegistrationRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return nil, fieldErrs, nil
			}
			return &models.Category{Name: req.Name}, nil, nil
		},
		Merge: func(c *fiber.Ctx, category *models.Category) ([]validation.FieldError, error) {
			var req CategoryUpdateRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return fieldErrs, nil
			}
			if req.Name != nil {
				category.Name = *req.Name
			}
			return nil, nil
		},
		Respond: func(category *models.Category) interface{} {
			return CategoryResponse{
				ID:        category.ID,
				Name:      category.Name,
				CreatedAt: category.CreatedAt,
				UpdatedAt: category.UpdatedAt,
			}
		},
	}
	return NewCrudHandler("categories", service, binder, log)
}
