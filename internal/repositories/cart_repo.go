package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart line access.
//
// Upsert is the single write path for adding a product: it atomically
// inserts a new line or overwrites the quantity of the existing line for
// that product, keyed on the unique product_id column. This replaces a
// separate find-then-save/update sequence so two concurrent adds for the
// same product cannot race into duplicate lines.
type CartRepository interface {
	ListAll() ([]models.CartItem, error)
	ListAllWithProducts() ([]models.CartItem, error)
	FindByProductID(productID string) (*models.CartItem, error)
	Upsert(productID string, quantity int) error
	Delete(id string) error
}
