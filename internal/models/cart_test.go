package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
)

func testProduct(t *testing.T, price float64, stock int) *models.Product {
	t.Helper()
	product, err := models.NewProduct("prod-1", "Laptop", "High performance laptop", price, stock)
	assert.NoError(t, err)
	return product
}

func TestNewCartItem_Valid(t *testing.T) {
	product := testProduct(t, 10.99, 5)

	item, err := models.NewCartItem(product, "line-1", 3)

	assert.NoError(t, err)
	assert.Equal(t, "line-1", item.ID)
	assert.Equal(t, "prod-1", item.ProductID)
	assert.Equal(t, 3, item.Quantity)
	assert.InDelta(t, 32.97, item.TotalPrice(), 0.0001)
}

func TestNewCartItem_QuantityNotPositive(t *testing.T) {
	product := testProduct(t, 10.99, 5)

	for _, quantity := range []int{0, -1} {
		item, err := models.NewCartItem(product, "line-1", quantity)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, models.ErrCartQuantityNotPositive)
	}
}

func TestNewCartItem_InsufficientStock(t *testing.T) {
	product := testProduct(t, 10.99, 5)

	item, err := models.NewCartItem(product, "line-1", 6)

	assert.Nil(t, item)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
}

func TestCartItem_WithQuantity(t *testing.T) {
	product := testProduct(t, 10.99, 5)
	item, err := models.NewCartItem(product, "line-1", 2)
	assert.NoError(t, err)

	updated, err := item.WithQuantity(4)

	assert.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	// The original line is never mutated.
	assert.Equal(t, 2, item.Quantity)
	assert.NotSame(t, item, updated)
}

func TestCartItem_WithQuantityValidates(t *testing.T) {
	product := testProduct(t, 10.99, 5)
	item, err := models.NewCartItem(product, "line-1", 2)
	assert.NoError(t, err)

	updated, err := item.WithQuantity(0)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrCartQuantityNotPositive)

	updated, err = item.WithQuantity(10)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
}

func TestCartItem_TotalPriceWithoutProduct(t *testing.T) {
	item := models.CartItem{ID: "line-1", ProductID: "prod-1", Quantity: 3}

	assert.Equal(t, 0.0, item.TotalPrice())
}

func TestTotalQuantity(t *testing.T) {
	items := []models.CartItem{
		{ID: "line-1", ProductID: "prod-1", Quantity: 2},
		{ID: "line-2", ProductID: "prod-2", Quantity: 5},
	}

	assert.Equal(t, 7, models.TotalQuantity(items))
	assert.Equal(t, 0, models.TotalQuantity(nil))
}
