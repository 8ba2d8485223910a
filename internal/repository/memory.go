package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/priyanshi-bakery/storefront/internal/models"
)

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	products map[int64]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := map[int64]models.Product{
		1: {ID: 1, Name: "Chocolate Truffle Cake", Description: "Rich dark chocolate layers with truffle cream", Price: 10.00, InStock: true},
		2: {ID: 2, Name: "Butter Croissant", Description: "Flaky, buttery, baked fresh every morning", Price: 2.50, InStock: true},
		3: {ID: 3, Name: "Red Velvet Cupcake", Description: "Classic red velvet with cream cheese frosting", Price: 3.00, InStock: true},
		4: {ID: 4, Name: "Sourdough Loaf", Description: "Slow-fermented sourdough with a crisp crust", Price: 5.00, InStock: true},
		5: {ID: 5, Name: "Blueberry Muffin", Description: "Bursting with wild blueberries", Price: 2.75, InStock: true},
		6: {ID: 6, Name: "Cinnamon Roll", Description: "Soft roll swirled with cinnamon sugar", Price: 3.50, InStock: true},
		7: {ID: 7, Name: "Macaron Box", Description: "Assorted French macarons, box of six", Price: 9.00, InStock: false},
		8: {ID: 8, Name: "Banana Bread", Description: "Moist banana bread with walnuts", Price: 4.25, InStock: true},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products ordered by id
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		nextID: 1,
		orders: make(map[int64]models.Order),
	}
}

// Create stores a new order, assigning it the next id and status pending
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now().UTC()
	r.orders[order.ID] = *order
	return nil
}

// GetStatus returns the status of the order with the given id
func (r *InMemoryOrderRepository) GetStatus(ctx context.Context, id int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return "", ErrOrderNotFound
	}
	return order.Status, nil
}

// SetStatus updates the status of the order with the given id
func (r *InMemoryOrderRepository) SetStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return ErrOrderNotFound
	}
	order.Status = status
	r.orders[id] = order
	return nil
}
