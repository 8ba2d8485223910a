package cache

import (
	"context"
	"errors"

	"github.com/priyanshi-bakery/storefront/internal/models"
)

// ProductCache caches the product catalog between requests
type ProductCache interface {
	Get(ctx context.Context) ([]models.Product, error)
	Set(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
