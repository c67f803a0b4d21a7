package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Lines are keyed by product ID, which gives the same one-line-per-product
// shape as the unique index in the database.
type MockCartRepository struct {
	byProduct map[string]models.CartItem
	products  *MockProductRepository
	mu        sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository. The
// product repository is used to join products in ListAllWithProducts.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		byProduct: make(map[string]models.CartItem),
		products:  products,
	}
}

// ListAll returns all cart lines without product data.
func (r *MockCartRepository) ListAll() ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, 0, len(r.byProduct))
	for _, item := range r.byProduct {
		item.Product = nil
		items = append(items, item)
	}
	return items, nil
}

// ListAllWithProducts returns all cart lines joined with their products.
func (r *MockCartRepository) ListAllWithProducts() ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, 0, len(r.byProduct))
	for _, item := range r.byProduct {
		if r.products != nil {
			product, err := r.products.FindByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			item.Product = product
		}
		items = append(items, item)
	}
	return items, nil
}

// FindByProductID returns the line for a product, or (nil, nil) when absent.
func (r *MockCartRepository) FindByProductID(productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byProduct[productID]
	if !ok {
		return nil, nil
	}
	item.Product = nil
	return &item, nil
}

// Upsert inserts a line for the product or overwrites its quantity. The
// map write under the lock is the in-memory equivalent of the single-statement
// database upsert.
func (r *MockCartRepository) Upsert(productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byProduct[productID]
	if ok {
		existing.Quantity = quantity
		r.byProduct[productID] = existing
		return nil
	}
	r.byProduct[productID] = models.CartItem{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
	}
	return nil
}

// Delete removes a cart line by its line ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for productID, item := range r.byProduct {
		if item.ID == id {
			delete(r.byProduct, productID)
			return nil
		}
	}
	return fmt.Errorf("cart item with ID %s not found for deletion", id)
}
