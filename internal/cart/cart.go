package cart

import (
	"github.com/priyanshi-bakery/storefront/internal/currency"
	"github.com/priyanshi-bakery/storefront/internal/models"
)

// LineItem is one cart entry: a product selected with a quantity.
// Price and DisplayPrice are copied from the product at add time.
type LineItem struct {
	ProductID    int64
	Name         string
	Price        float64
	DisplayPrice float64
	Quantity     int
}

// Cart is an ordered collection of line items, at most one per product id.
// Insertion order is first-add order. A Cart belongs to a single browsing
// session and is not safe for concurrent use.
type Cart struct {
	items []LineItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add puts a product into the cart. If a line item for the same product id
// already exists its quantity is incremented in place; otherwise a new line
// item with quantity 1 is appended, copying the product's canonical and
// display prices.
func (c *Cart) Add(p models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, LineItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		DisplayPrice: p.DisplayPrice,
		Quantity:     1,
	})
}

// Remove deletes the line item matching productID. Removing an absent id is
// a no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the matching line item's quantity to exactly quantity.
// Quantities below 1 are rejected without touching the cart; the UI is
// responsible for preventing decrements below 1. A missing product id is a
// no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Total returns the cart total in the canonical currency. This is the value
// the backend computes and charges against.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// DisplayTotal returns the cart total in the display currency, rounded to
// two decimal places at this final step only. Presentation-only; never sent
// to the backend.
func (c *Cart) DisplayTotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.DisplayPrice * float64(item.Quantity)
	}
	return currency.Round2(total)
}

// Items returns a copy of the line items in insertion order
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct line items
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}
