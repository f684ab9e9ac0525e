package service

import (
	"context"
	"errors"

	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/repository"
	"github.com/mohammadsaqib2064/onyx-aura/internal/cache"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrMissingFields   = errors.New("missing required fields: name, price, image, category, description")
	ErrInvalidCategory = errors.New("category must be Collection or Spotlight")
)

type ProductService interface {
	ListProducts(ctx context.Context, category *model.ProductCategory) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id string, updates *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	catalogCache *cache.CatalogCache
}

// NewProductService creates the product service. catalogCache may be nil
// when Redis is not configured.
func NewProductService(productRepo repository.ProductRepository, catalogCache *cache.CatalogCache) ProductService {
	return &productService{
		productRepo:  productRepo,
		catalogCache: catalogCache,
	}
}

func (s *productService) ListProducts(ctx context.Context, category *model.ProductCategory) ([]model.Product, error) {
	// Category listings bypass the cache; only the full list is hot
	// enough to be worth it.
	if category != nil {
		return s.productRepo.FindByCategory(*category)
	}

	if products, ok := s.catalogCache.Get(ctx); ok {
		logger.Debug("Serving catalog from cache", map[string]interface{}{
			"count": len(products),
		})
		return products, nil
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	s.catalogCache.Set(ctx, products)
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.catalogCache.Invalidate(ctx)

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"category":   product.Category,
	})
	return nil
}

// UpdateProduct applies a partial draft: only non-zero fields of updates
// overwrite the stored record.
func (s *productService) UpdateProduct(ctx context.Context, id string, updates *model.Product) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	applyUpdates(product, updates)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	s.catalogCache.Invalidate(ctx)

	logger.Info("Product updated", map[string]interface{}{
		"product_id": id,
	})
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	s.catalogCache.Invalidate(ctx)

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func validateProduct(p *model.Product) error {
	if p.Name == "" || p.Price == "" || p.Image == "" || p.Category == "" || p.Description == "" {
		return ErrMissingFields
	}
	if p.Category != model.CategoryCollection && p.Category != model.CategorySpotlight {
		return ErrInvalidCategory
	}
	return nil
}

func applyUpdates(product, updates *model.Product) {
	if updates.Name != "" {
		product.Name = updates.Name
	}
	if updates.Price != "" {
		product.Price = updates.Price
	}
	if updates.Image != "" {
		product.Image = updates.Image
	}
	if updates.Images != nil {
		product.Images = updates.Images
	}
	if updates.Category != "" {
		product.Category = updates.Category
	}
	if updates.Description != "" {
		product.Description = updates.Description
	}
	if updates.Height != "" {
		product.Height = updates.Height
	}
	if updates.Specifications != (model.Specifications{}) {
		product.Specifications = updates.Specifications
	}
}
