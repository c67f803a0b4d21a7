package models

import "errors"

// Validation errors for cart line construction.
var (
	ErrCartQuantityNotPositive = errors.New("Cart item quantity must be greater than 0")
	ErrInsufficientStock       = errors.New("Insufficient stock for the requested quantity")
)

// CartItem is a single (product, quantity) line of the cart. The Product
// pointer is only populated by queries that join the products table.
type CartItem struct {
	ID        string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string   `json:"productId" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Quantity  int      `json:"quantity" validate:"gt=0"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName maps CartItem onto the cart table.
func (CartItem) TableName() string {
	return "cart"
}

// NewCartItem constructs a validated cart line for the given product.
// The quantity must be positive and covered by the product's stock at
// construction time; stock is not re-checked on later reads.
func NewCartItem(product *Product, id string, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrCartQuantityNotPositive
	}
	if !product.HasStock(quantity) {
		return nil, ErrInsufficientStock
	}
	return &CartItem{
		ID:        id,
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	}, nil
}

// TotalPrice is the line total: product price times quantity. It returns 0
// when the product has not been joined.
func (c *CartItem) TotalPrice() float64 {
	if c.Product == nil {
		return 0
	}
	return c.Product.Price * float64(c.Quantity)
}

// WithQuantity returns a new validated line with the given quantity. The
// receiver is never mutated.
func (c *CartItem) WithQuantity(quantity int) (*CartItem, error) {
	return NewCartItem(c.Product, c.ID, quantity)
}

// TotalQuantity sums the quantities across cart lines.
func TotalQuantity(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
