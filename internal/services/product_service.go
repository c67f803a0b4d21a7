package services

import (
	"errors"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Errors returned by the product use cases.
var (
	ErrProductIDRequired = errors.New("Product ID is required")
	ErrProductNotFound   = errors.New("Product not found")
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.FindAll()
}

// GetProductByID retrieves a single product by its ID. A blank ID fails
// with ErrProductIDRequired, a missing product with ErrProductNotFound;
// otherwise the product is returned exactly as the repository supplied it.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrProductIDRequired
	}
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
