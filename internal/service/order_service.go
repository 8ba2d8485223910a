package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
)

var (
	ErrMissingCustomer = errors.New("customer name and email are required")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidProduct  = errors.New("invalid product")
)

// OrderPublisher notifies the processing pipeline about placed orders
type OrderPublisher interface {
	Publish(ctx context.Context, orderID int64) error
}

// OrderService handles order business logic
type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	publisher OrderPublisher
	log       *slog.Logger
}

// NewOrderService creates a new order service. publisher may be nil, in
// which case orders stay pending until a worker picks them up by other means.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, publisher OrderPublisher, log *slog.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
		log:       log,
	}
}

// CreateOrder validates and persists an order, then announces it to the
// processing queue. Publish failures are logged but do not fail the order;
// the customer already has a confirmed id at that point.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return nil, ErrMissingCustomer
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, err := s.products.GetByID(ctx, item.ProductID); err != nil {
			return nil, ErrInvalidProduct
		}
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, order.ID); err != nil {
			s.log.Error("failed to publish order event", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// OrderStatus returns the current status of the given order
func (s *OrderService) OrderStatus(ctx context.Context, orderID int64) (string, error) {
	return s.orders.GetStatus(ctx, orderID)
}
