package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"toko/internal/models"

	"github.com/google/uuid"
)

// InMemoryProductRepository is a map-backed ProductRepository. It is used
// when no database is configured and by tests that need a working store.
type InMemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
	now      func() time.Time
}

// NewInMemoryProductRepository creates an empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
		now:      time.Now,
	}
}

// GetAll returns all products, newest first.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.SliceStable(productList, func(i, j int) bool {
		return productList[i].CreatedAt.After(productList[j].CreatedAt)
	})
	return productList, nil
}

// GetByID returns a copy of the product stored under id.
func (r *InMemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: ID %s", ErrProductNotFound, id)
	}
	return &product, nil
}

// Create adds a new product, rejecting a SKU that is already taken.
func (r *InMemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.SKU != "" {
		for _, p := range r.products {
			if p.SKU == product.SKU {
				return fmt.Errorf("failed to create product: sku %s already exists", product.SKU)
			}
		}
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := r.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// Update replaces an existing product, keeping its creation time.
func (r *InMemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("%w: ID %s", ErrProductNotFound, product.ID)
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = r.now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: ID %s", ErrProductNotFound, id)
	}
	delete(r.products, id)
	return nil
}
