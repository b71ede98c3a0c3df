package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"microshop/internal/models"
)

// NewUserRepository creates the user store adapter.
func NewUserRepository(db *gorm.DB) *GormRepository[models.User, *models.User] {
	return NewGormRepository[models.User, *models.User](db)
}

// NewProductRepository creates the product store adapter.
func NewProductRepository(db *gorm.DB) *GormRepository[models.Product, *models.Product] {
	return NewGormRepository[models.Product, *models.Product](db)
}

// NewCategoryRepository creates the category store adapter. Deleting a
// category removes its products first, in the same transaction.
func NewCategoryRepository(db *gorm.DB) *GormRepository[models.Category, *models.Category] {
	return NewGormRepository(db,
		WithCascade[models.Category, *models.Category](func(tx *gorm.DB, id uuid.UUID) error {
			return tx.Where("category_id = ?", id).Delete(&models.Product{}).Error
		}),
	)
}

// NewAddressRepository creates the address store adapter.
func NewAddressRepository(db *gorm.DB) *GormRepository[models.Address, *models.Address] {
	return NewGormRepository[models.Address, *models.Address](db)
}
