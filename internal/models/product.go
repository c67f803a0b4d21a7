package models

import (
	"errors"
	"strings"
)

// Validation errors for Product construction.
var (
	ErrProductIDEmpty       = errors.New("Product ID cannot be empty")
	ErrProductNameEmpty     = errors.New("Product name cannot be empty")
	ErrProductPriceNegative = errors.New("Product price cannot be negative")
	ErrProductStockNegative = errors.New("Product stock cannot be negative")
)

// Product represents a catalog item in the store.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Description string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// NewProduct constructs a validated Product. Note that repositories hydrate
// Product structs directly from rows and bypass this constructor.
func NewProduct(id, name, description string, price float64, stock int) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrProductIDEmpty
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrProductNameEmpty
	}
	if price < 0 {
		return nil, ErrProductPriceNegative
	}
	if stock < 0 {
		return nil, ErrProductStockNegative
	}
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// IsAvailable reports whether the product has any stock left.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// HasStock reports whether the product can cover the requested quantity.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
