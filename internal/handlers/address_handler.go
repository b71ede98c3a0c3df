package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"microshop/internal/models"
	"microshop/pkg/validation"
)

// AddressRegistrationRequest is the POST payload for addresses.
type AddressRegistrationRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Street  string    `json:"street" validate:"required,max=255"`
	City    string    `json:"city" validate:"required,max=100"`
	State   string    `json:"state" validate:"required,max=100"`
	Country string    `json:"country" validate:"required,max=100"`
	ZipCode string    `json:"zip_code" validate:"required,max=20"`
}

// AddressUpdateRequest overlays submitted fields onto the stored address.
type AddressUpdateRequest struct {
	Street  *string `json:"street" validate:"omitempty,max=255"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`
}

// AddressResponse is the wire shape of an address.
type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAddressHandler wires the address resource.
func NewAddressHandler(service Crud[models.Address, *models.Address], log *logrus.Logger) *CrudHandler[models.Address, *models.Address] {
	binder := Binder[models.Address, *models.Address]{
		Decode: func(c *fiber.Ctx) (*models.Address, []validation.FieldError, error) {
			var req AddressRegistrationRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return nil, fieldErrs, nil
			}
			return &models.Address{
				UserID:  req.UserID,
				Street:  req.Street,
				City:    req.City,
				State:   req.State,
				Country: req.Country,
				ZipCode: req.ZipCode,
			}, nil, nil
		},
		Merge: func(c *fiber.Ctx, address *models.Address) ([]validation.FieldError, error) {
			var req AddressUpdateRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return fieldErrs, nil
			}
			if req.Street != nil {
				address.Street = *req.Street
			}
			if req.City != nil {
				address.City = *req.City
			}
			if req.State != nil {
				address.State = *req.State
			}
			if req.Country != nil {
				address.Country = *req.Country
			}
			if req.ZipCode != nil {
				address.ZipCode = *req.ZipCode
			}
			return nil, nil
		},
		Respond: func(address *models.Address) interface{} {
			return AddressResponse{
				ID:        address.ID,
				UserID:    address.UserID,
				Street:    address.Street,
				City:      address.City,
				State:     address.State,
				Country:   address.Country,
				ZipCode:   address.ZipCode,
				CreatedAt: address.CreatedAt,
				UpdatedAt: address.UpdatedAt,
			}
		},
	}
	return NewCrudHandler("addresses", service, binder, log)
}
