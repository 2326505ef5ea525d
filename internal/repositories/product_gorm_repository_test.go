package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"toko/internal/database"
	"toko/internal/models"
	"toko/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func sampleProduct(name, sku string) *models.Product {
	return &models.Product{
		Name:               name,
		Category:           "books",
		Stock:              150,
		OriginalPrice:      100,
		Price:              90,
		DiscountPercentage: 10,
		SKU:                sku,
		IsActive:           true,
	}
}

func TestGORMProductRepository_CRUD(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := sampleProduct("Novel", "BOO-NOVE-000001")
	require.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	fetched, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novel", fetched.Name)
	assert.Equal(t, 90.0, fetched.Price)
	assert.Equal(t, 100.0, fetched.OriginalPrice)
	assert.Equal(t, 10, fetched.DiscountPercentage)
	assert.True(t, fetched.IsActive)

	fetched.Stock = 50
	fetched.Price = 100
	fetched.DiscountPercentage = 0
	fetched.Description = ""
	require.NoError(t, repo.Update(fetched))

	updated, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock)
	assert.Equal(t, 100.0, updated.Price)
	// Zero values are written too.
	assert.Equal(t, 0, updated.DiscountPercentage)

	require.NoError(t, repo.Delete(product.ID))
	_, err = repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_NotFound(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	_, err := repo.GetByID("999")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = repo.Update(&models.Product{ID: "999", Name: "ghost", Price: 1})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = repo.Delete("999")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_UniqueSKU(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(sampleProduct("First", "BOO-SAME-000001")))
	err := repo.Create(sampleProduct("Second", "BOO-SAME-000001"))
	assert.Error(t, err)
}

func TestGORMProductRepository_GetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	older := sampleProduct("Older", "BOO-OLDE-000001")
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(older))
	newer := sampleProduct("Newer", "BOO-NEWE-000002")
	require.NoError(t, repo.Create(newer))

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Newer", products[0].Name)
	assert.Equal(t, "Older", products[1].Name)
}

func TestInMemoryProductRepository(t *testing.T) {
	repo := repositories.NewInMemoryProductRepository()

	product := sampleProduct("Novel", "BOO-NOVE-000001")
	require.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)

	assert.Error(t, repo.Create(sampleProduct("Copy", "BOO-NOVE-000001")))

	fetched, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	fetched.Name = "Renamed"
	// The returned value is a copy.
	again, _ := repo.GetByID(product.ID)
	assert.Equal(t, "Novel", again.Name)

	require.NoError(t, repo.Update(fetched))
	again, _ = repo.GetByID(product.ID)
	assert.Equal(t, "Renamed", again.Name)
	assert.Equal(t, product.CreatedAt, again.CreatedAt)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(product.ID))
	assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(fetched), repositories.ErrProductNotFound)
}
