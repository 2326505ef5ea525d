package repositories

import (
	"errors"

	"toko/internal/models"
)

// ErrProductNotFound is returned when no product exists for an ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, newest first.
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// Create stores a new product, assigning its ID and timestamps.
	Create(product *models.Product) error
	// Update overwrites every column of an existing product.
	Update(product *models.Product) error
	Delete(id string) error
}
