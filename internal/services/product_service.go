package services

import (
	"errors"
	"fmt"
	"time"

	"toko/internal/catalog"
	"toko/internal/models"
	"toko/internal/repositories"

	"go.uber.org/zap"
)

// ProductService handles the product lifecycle: admission on create,
// repricing on update, and removal. Every write runs the catalog pipeline
// before anything reaches the repository.
type ProductService struct {
	repo      repositories.ProductRepository
	pipeline  *catalog.Pipeline
	skus      *catalog.SkuGenerator
	publisher EventPublisher
	now       func() time.Time
}

// NewProductService creates a new ProductService. A nil pipeline uses the
// default catalog rules, a nil sku generator reads the wall clock and a nil
// publisher drops events.
func NewProductService(repo repositories.ProductRepository, pipeline *catalog.Pipeline, skus *catalog.SkuGenerator, publisher EventPublisher) *ProductService {
	if pipeline == nil {
		pipeline = catalog.NewPipeline(catalog.DefaultRules())
	}
	if skus == nil {
		skus = catalog.NewSkuGenerator(nil)
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ProductService{
		repo:      repo,
		pipeline:  pipeline,
		skus:      skus,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.findProduct(id)
}

// CreateProduct validates and prices a new product, assigns its SKU and
// stores it. The input price becomes the product's list price.
func (s *ProductService) CreateProduct(input models.CreateProductInput) (*models.Product, error) {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	quote, err := s.pipeline.Admit(input.Category, input.Price, stock)
	if err != nil {
		return nil, err
	}

	category := s.pipeline.Categories().Normalize(input.Category)
	product := &models.Product{
		Name:               input.Name,
		Description:        input.Description,
		Category:           category,
		ImageURL:           input.ImageURL,
		Stock:              stock,
		OriginalPrice:      input.Price,
		Price:              quote.FinalPrice,
		DiscountPercentage: quote.DiscountPercentage,
		SKU:                s.skus.Generate(input.Name, category),
		IsActive:           true,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	zap.L().Info("product created",
		zap.String("id", product.ID),
		zap.String("sku", product.SKU),
		zap.Float64("price", product.Price),
		zap.Int("discount", product.DiscountPercentage))
	publishEvent(s.publisher, NewProductEvent(EventProductCreated, product, s.now()))
	return product, nil
}

// UpdateProduct applies a partial update. When price or stock change the
// discount is recomputed from the list price anchor, so a stock-only update
// reprices from the last list price rather than the discounted one.
func (s *ProductService) UpdateProduct(id string, input models.UpdateProductInput) (*models.Product, error) {
	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Stock != nil {
		if err := s.pipeline.ValidateStock(*input.Stock); err != nil {
			return nil, err
		}
	}
	if input.Category != nil {
		if err := s.pipeline.ValidateCategory(*input.Category); err != nil {
			return nil, err
		}
	}
	if input.Category != nil || input.Price != nil {
		category := effectiveCategory(input.Category, product.Category)
		price := valueOr(input.Price, product.Price)
		if err := s.pipeline.ValidatePremiumPrice(category, price); err != nil {
			return nil, err
		}
	}

	var quote catalog.Quote
	var listPrice float64
	var stock int
	if input.Reprices() {
		listPrice = listPriceAnchor(input.Price, product)
		stock = valueOr(input.Stock, product.Stock)
		quote, err = s.pipeline.Pricing().Reprice(listPrice, stock)
		if err != nil {
			return nil, err
		}
	}

	s.applyFields(product, input)
	if input.Reprices() {
		product.Stock = stock
		product.OriginalPrice = listPrice
		product.Price = quote.FinalPrice
		product.DiscountPercentage = quote.DiscountPercentage
	}

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	zap.L().Info("product updated",
		zap.String("id", product.ID),
		zap.Bool("repriced", input.Reprices()),
		zap.Float64("price", product.Price),
		zap.Int("discount", product.DiscountPercentage))
	publishEvent(s.publisher, NewProductEvent(EventProductUpdated, product, s.now()))
	return product, nil
}

// DeleteProduct removes a product after confirming it exists.
func (s *ProductService) DeleteProduct(id string) error {
	product, err := s.findProduct(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(id)
		}
		return err
	}

	zap.L().Info("product deleted", zap.String("id", id), zap.String("sku", product.SKU))
	publishEvent(s.publisher, NewProductEvent(EventProductDeleted, product, s.now()))
	return nil
}

func (s *ProductService) findProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return product, nil
}

// applyFields copies the supplied non-pricing fields onto product.
func (s *ProductService) applyFields(product *models.Product, input models.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		product.Category = s.pipeline.Categories().Normalize(*input.Category)
	}
}

// effectiveCategory is the category the premium floor is checked against.
// An empty replacement counts as "not supplied" and falls back to the stored
// category.
func effectiveCategory(update *string, current string) string {
	if update != nil && *update != "" {
		return *update
	}
	return current
}

// listPriceAnchor resolves the list price to reprice from: the new price if
// one was supplied, else the stored original price, else the stored price for
// records that predate the original price column.
func listPriceAnchor(update *float64, product *models.Product) float64 {
	if update != nil {
		return *update
	}
	if product.OriginalPrice != 0 {
		return product.OriginalPrice
	}
	return product.Price
}

func valueOr[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

func notFound(id string) error {
	return fmt.Errorf("%w: product with ID %s not found", catalog.ErrNotFound, id)
}
