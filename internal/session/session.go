package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/priyanshi-bakery/storefront/internal/cart"
	"github.com/priyanshi-bakery/storefront/internal/currency"
	"github.com/priyanshi-bakery/storefront/internal/models"
)

// Error taxonomy for session actions. Every failure leaves the session in a
// well-defined prior state; retry is user-initiated by re-triggering the
// action.
var (
	ErrMissingDetails  = errors.New("please fill in your details and add items to cart")
	ErrCatalogFetch    = errors.New("failed to fetch products")
	ErrOrderSubmission = errors.New("failed to place order")
	ErrStatusLookup    = errors.New("failed to check order status")
	ErrMissingOrderID  = errors.New("order id is required")
)

// User-facing messages, one slot, overwritten by the next action's outcome
const (
	msgOrderPlaced    = "Order placed successfully! We are processing your order."
	msgCatalogFailed  = "Failed to fetch products. Please try again later."
	msgOrderFailed    = "Failed to place order. Please try again."
	msgStatusFailed   = "Failed to check order status. Please verify your order ID."
	msgMissingDetails = "Please fill in your details and add items to cart"
	msgMissingOrderID = "Please enter an order ID"
)

// ShopAPI is the backend collaborator the session depends on but does not
// implement
type ShopAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateOrder(ctx context.Context, order models.OrderRequest) (int64, error)
	OrderStatus(ctx context.Context, orderID int64) (string, error)
}

// Session is one customer's browsing session: the fetched catalog, the cart
// being built, the customer's details, and the outcome of the last action.
// It has a single logical writer; methods must not be called concurrently.
type Session struct {
	ID      uuid.UUID
	api     ShopAPI
	log     *slog.Logger
	catalog []models.Product

	Cart          *cart.Cart
	CustomerName  string
	CustomerEmail string

	orderID int64
	message string
}

// New creates an empty session against the given collaborator
func New(api ShopAPI, log *slog.Logger) *Session {
	return &Session{
		ID:   uuid.New(),
		api:  api,
		log:  log,
		Cart: cart.New(),
	}
}

// LoadCatalog fetches the product catalog and annotates each product with
// its display price. Display prices are recomputed fresh on every fetch,
// never accumulated, and the canonical price field is left untouched.
func (s *Session) LoadCatalog(ctx context.Context) error {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.log.Error("catalog fetch failed", "session_id", s.ID, "error", err)
		s.message = msgCatalogFailed
		return fmt.Errorf("%w: %w", ErrCatalogFetch, err)
	}

	for i := range products {
		products[i].DisplayPrice = currency.ToDisplay(products[i].Price)
	}
	s.catalog = products

	s.log.Info("catalog loaded", "session_id", s.ID, "products", len(products))
	return nil
}

// Catalog returns the most recently fetched products
func (s *Session) Catalog() []models.Product {
	return s.catalog
}

// Product finds a catalog product by id
func (s *Session) Product(id int64) (models.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// PlaceOrder validates customer details and cart content, submits the order,
// and on success captures the order id, sets the success message, and clears
// the cart and customer fields as one transition. On any failure nothing is
// changed except the message slot.
func (s *Session) PlaceOrder(ctx context.Context) (int64, error) {
	if s.CustomerName == "" || s.CustomerEmail == "" || s.Cart.IsEmpty() {
		s.message = msgMissingDetails
		return 0, ErrMissingDetails
	}

	items := s.Cart.Items()
	req := models.OrderRequest{
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		Items:         make([]models.OrderItem, len(items)),
	}
	for i, item := range items {
		// canonical ids and quantities only; the backend owns pricing
		req.Items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	orderID, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		s.log.Error("order submission failed", "session_id", s.ID, "error", err)
		s.message = msgOrderFailed
		return 0, fmt.Errorf("%w: %w", ErrOrderSubmission, err)
	}

	s.orderID = orderID
	s.message = msgOrderPlaced
	s.Cart.Clear()
	s.CustomerName = ""
	s.CustomerEmail = ""

	s.log.Info("order placed", "session_id", s.ID, "order_id", orderID)
	return orderID, nil
}

// CheckStatus looks up an order's status and records it in the message slot
// in the form "Order #{id} status: {status}". A failed lookup never alters
// the stored order id.
func (s *Session) CheckStatus(ctx context.Context, orderID int64) (string, error) {
	if orderID == 0 {
		s.message = msgMissingOrderID
		return "", ErrMissingOrderID
	}

	status, err := s.api.OrderStatus(ctx, orderID)
	if err != nil {
		s.log.Error("status lookup failed", "session_id", s.ID, "order_id", orderID, "error", err)
		s.message = msgStatusFailed
		return "", fmt.Errorf("%w: %w", ErrStatusLookup, err)
	}

	s.message = fmt.Sprintf("Order #%d status: %s", orderID, status)
	return status, nil
}

// OrderID returns the id captured from the last successful order, 0 if none
func (s *Session) OrderID() int64 {
	return s.orderID
}

// Message returns the current user-visible message
func (s *Session) Message() string {
	return s.message
}
