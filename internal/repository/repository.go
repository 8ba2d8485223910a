package repository

import (
	"context"
	"errors"

	"github.com/priyanshi-bakery/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetStatus(ctx context.Context, id int64) (string, error)
	SetStatus(ctx context.Context, id int64, status string) error
}
