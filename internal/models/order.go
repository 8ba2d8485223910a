package models

import "time"

// OrderRequest represents an incoming order request
// Schema matches the bakery REST API contract
type OrderRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
}

// OrderItem represents a single item in an order.
// Only the product identity and quantity cross the wire; the backend is the
// pricing authority.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order statuses as set by the processing worker
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// Order represents a persisted order
type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderCreatedResponse is the body returned by POST /api/orders
type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// OrderStatusResponse is the body returned by GET /api/orders/{id}
type OrderStatusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
