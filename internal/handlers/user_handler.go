package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"microshop/internal/models"
	"microshop/pkg/validation"
)

// UserRegistrationRequest is the POST payload for users.
type UserRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// UserUpdateRequest overlays submitted fields onto the stored user.
type UserUpdateRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserHandler wires the user resource. Passwords are bcrypt-hashed here in
// the mapping layer, so the service and repository only ever see the hash.
func NewUserHandler(service Crud[models.User, *models.User], log *logrus.Logger) *CrudHandler[models.User, *models.User] {
	binder := Binder[models.User, *models.User]{
		Decode: func(c *fiber.Ctx) (*models.User, []validation.FieldError, error) {
			var req UserRegistrationRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return nil, fieldErrs, nil
			}
			hash, err := hashPassword(req.Password)
			if err != nil {
				return nil, nil, err
			}
			return &models.User{
				Email:        req.Email,
				FirstName:    req.FirstName,
				LastName:     req.LastName,
				PasswordHash: hash,
			}, nil, nil
		},
		Merge: func(c *fiber.Ctx, user *models.User) ([]validation.FieldError, error) {
			var req UserUpdateRequest
			if err := c.BodyParser(&req); err != nil {
				return nil, badBody(err)
			}
			if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
				return fieldErrs, nil
			}
			if req.Email != nil {
				user.Email = *req.Email
			}
			if req.FirstName != nil {
				user.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				user.LastName = *req.LastName
			}
			if req.Password != nil {
				hash, err := hashPassword(*req.Password)
				if err != nil {
					return nil, err
				}
				user.PasswordHash = hash
			}
			return nil, nil
		},
		Respond: func(user *models.User) interface{} {
			return UserResponse{
				ID:        user.ID,
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				CreatedAt: user.CreatedAt,
				UpdatedAt: user.UpdatedAt,
			}
		},
	}
	return NewCrudHandler("users", service, binder, log)
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
