package service

import (
	"context"
	"errors"
	"testing"

	"github.com/priyanshi-bakery/storefront/internal/cache"
	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
	"github.com/priyanshi-bakery/storefront/pkg/logger"
)

type fakeCache struct {
	products []models.Product
	getErr   error
	setErr   error
	sets     int
}

func (f *fakeCache) Get(ctx context.Context) ([]models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.products == nil {
		return nil, cache.ErrCacheMiss
	}
	return f.products, nil
}

func (f *fakeCache) Set(ctx context.Context, products []models.Product) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.products = products
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.products = nil
	return nil
}

func TestProductService_ListProducts_NoCache(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository(), nil, logger.New("error"))

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) == 0 {
		t.Error("expected products to be returned")
	}
}

func TestProductService_ListProducts_PopulatesCache(t *testing.T) {
	c := &fakeCache{}
	svc := NewProductService(repository.NewInMemoryProductRepository(), c, logger.New("error"))

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if c.sets != 1 {
		t.Errorf("cache sets = %d, want 1", c.sets)
	}
	if len(c.products) != len(products) {
		t.Errorf("cached %d products, served %d", len(c.products), len(products))
	}
}

func TestProductService_ListProducts_ServesFromCache(t *testing.T) {
	cached := []models.Product{{ID: 1, Name: "Chocolate Truffle Cake", Price: 10.00, InStock: true}}
	c := &fakeCache{products: cached}
	svc := NewProductService(repository.NewInMemoryProductRepository(), c, logger.New("error"))

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected cached catalog of 1 product, got %d", len(products))
	}
	if c.sets != 0 {
		t.Errorf("cache hit should not re-populate, sets = %d", c.sets)
	}
}

func TestProductService_ListProducts_CacheFailureDegrades(t *testing.T) {
	c := &fakeCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewProductService(repository.NewInMemoryProductRepository(), c, logger.New("error"))

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v, cache failure must degrade to repository", err)
	}
	if len(products) == 0 {
		t.Error("expected products from repository")
	}
}

func TestProductService_GetProduct(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository(), nil, logger.New("error"))

	product, err := svc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if product.Name != "Chocolate Truffle Cake" {
		t.Errorf("product name = %q", product.Name)
	}

	if _, err := svc.GetProduct(context.Background(), 999); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("GetProduct(999) error = %v, want ErrProductNotFound", err)
	}
}
