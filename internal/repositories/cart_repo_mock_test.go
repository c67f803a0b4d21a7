package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func newSeededRepos() (*repositories.MockProductRepository, *repositories.MockCartRepository) {
	productRepo := repositories.NewMockProductRepository()
	productRepo.Put(&models.Product{ID: "prod-1", Name: "Laptop", Price: 10.99, Stock: 5})
	productRepo.Put(&models.Product{ID: "prod-2", Name: "Mouse", Price: 25.00, Stock: 50})
	return productRepo, repositories.NewMockCartRepository(productRepo)
}

func TestMockCartRepository_UpsertInsertsThenOverwrites(t *testing.T) {
	_, cartRepo := newSeededRepos()

	assert.NoError(t, cartRepo.Upsert("prod-1", 2))
	assert.NoError(t, cartRepo.Upsert("prod-1", 5))

	items, err := cartRepo.ListAll()
	assert.NoError(t, err)
	// One line per product: the second upsert overwrote the quantity.
	assert.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestMockCartRepository_UpsertKeepsLineID(t *testing.T) {
	_, cartRepo := newSeededRepos()

	assert.NoError(t, cartRepo.Upsert("prod-1", 2))
	before, err := cartRepo.FindByProductID("prod-1")
	assert.NoError(t, err)

	assert.NoError(t, cartRepo.Upsert("prod-1", 3))
	after, err := cartRepo.FindByProductID("prod-1")
	assert.NoError(t, err)

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, 3, after.Quantity)
}

func TestMockCartRepository_FindByProductID_Absent(t *testing.T) {
	_, cartRepo := newSeededRepos()

	item, err := cartRepo.FindByProductID("prod-1")

	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestMockCartRepository_ListAllWithProducts(t *testing.T) {
	_, cartRepo := newSeededRepos()

	assert.NoError(t, cartRepo.Upsert("prod-1", 2))
	assert.NoError(t, cartRepo.Upsert("prod-2", 1))

	items, err := cartRepo.ListAllWithProducts()
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.NotNil(t, item.Product)
		assert.Equal(t, item.ProductID, item.Product.ID)
	}

	// The raw listing carries no joined products.
	raw, err := cartRepo.ListAll()
	assert.NoError(t, err)
	for _, item := range raw {
		assert.Nil(t, item.Product)
	}
}

func TestMockCartRepository_Delete(t *testing.T) {
	_, cartRepo := newSeededRepos()

	assert.NoError(t, cartRepo.Upsert("prod-1", 2))
	line, err := cartRepo.FindByProductID("prod-1")
	assert.NoError(t, err)

	assert.NoError(t, cartRepo.Delete(line.ID))

	items, err := cartRepo.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, items)

	err = cartRepo.Delete(line.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
}

func TestMockProductRepository_FindByID(t *testing.T) {
	productRepo, _ := newSeededRepos()

	product, err := productRepo.FindByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)

	absent, err := productRepo.FindByID("no-such-product")
	assert.NoError(t, err)
	assert.Nil(t, absent)
}
