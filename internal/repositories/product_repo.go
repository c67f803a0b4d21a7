package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the read-only interface for catalog access.
// Lookups that match nothing return (nil, nil); errors are reserved for
// storage failures.
type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id string) (*models.Product, error)
}
