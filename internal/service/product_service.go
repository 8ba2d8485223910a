package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/priyanshi-bakery/storefront/internal/cache"
	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
)

// ProductService handles business logic for products. The catalog read path
// goes through the cache when one is configured; cache failures degrade to
// the repository and are logged, never surfaced.
type ProductService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	log   *slog.Logger
	sfg   singleflight.Group // collapses concurrent cache misses
}

// NewProductService creates a new product service. cache may be nil.
func NewProductService(repo repository.ProductRepository, productCache cache.ProductCache, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: productCache,
		log:   log,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("product cache get failed", "error", err)
		}

		products, err = s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, products); err != nil {
			s.log.Warn("product cache set failed", "error", err)
		}

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.Product), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
