package models

// Product represents a bakery item available for order.
// Price is in the backend's canonical currency; DisplayPrice is a derived,
// presentation-only value and is never sent back to the backend.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	InStock      bool    `json:"in_stock"`
	DisplayPrice float64 `json:"-"`
}
