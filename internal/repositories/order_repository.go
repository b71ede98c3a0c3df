package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"microshop/internal/apperrors"
	"microshop/internal/models"
)

// OrderRepository extends the generic adapter with transactional item
// replacement: a PUT swaps the whole item set, so the stored children are
// deleted and recreated inside one transaction instead of relying on GORM's
// association graph tracking.
type OrderRepository struct {
	*GormRepository[models.Order, *models.Order]
	db *gorm.DB
}

// NewOrderRepository creates the order store adapter. Reads eagerly load the
// item collection; deletes remove items before the order row.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		GormRepository: NewGormRepository(db,
			WithPreloads[models.Order, *models.Order]("Items"),
			WithCascade[models.Order, *models.Order](func(tx *gorm.DB, id uuid.UUID) error {
				return tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error
			}),
		),
		db: db,
	}
}

// Update overwrites the order's scalar fields and replaces its item set
// atomically.
func (r *OrderRepository) Update(order *models.Order) (*models.Order, error) {
	if order == nil || order.ID == uuid.Nil {
		return nil, fmt.Errorf("cannot update order without id: %w", apperrors.ErrInvalidArgument)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("order %s: %w", order.ID, apperrors.ErrNotFound)
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}
		// Items carried over from the stored order keep their ids across
		// the replace; fresh items get ids at insert.
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update order %s: %w", order.ID, err)
	}
	return order, nil
}
