package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// ListAll retrieves all cart lines without joining product data.
func (r *GORMCartRepository) ListAll() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// ListAllWithProducts retrieves all cart lines with their products joined.
func (r *GORMCartRepository) ListAllWithProducts() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items with products: %w", err)
	}
	return items, nil
}

// FindByProductID retrieves the cart line for a product, or (nil, nil)
// when the product is not in the cart.
func (r *GORMCartRepository) FindByProductID(productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart item by product ID %s: %w", productID, err)
	}
	return &item, nil
}

// Upsert inserts a cart line for the product or overwrites the quantity of
// the existing one. The conflict target is the unique index on product_id,
// so the insert-or-update decision happens inside a single statement.
func (r *GORMCartRepository) Upsert(productID string, quantity int) error {
	item := models.CartItem{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": quantity}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item for product %s: %w", productID, err)
	}
	return nil
}

// Delete removes a cart line by its line ID.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found for deletion", id)
	}
	return nil
}
