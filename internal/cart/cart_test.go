package cart

import (
	"math"
	"testing"

	"github.com/priyanshi-bakery/storefront/internal/currency"
	"github.com/priyanshi-bakery/storefront/internal/models"
)

func displayProduct(id int64, name string, price float64) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Price:        price,
		InStock:      true,
		DisplayPrice: currency.ToDisplay(price),
	}
}

func TestAdd_NewProduct(t *testing.T) {
	c := New()
	c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", items[0].Quantity)
	}
	if items[0].Price != 10.00 {
		t.Errorf("expected canonical price 10.00, got %v", items[0].Price)
	}
	if items[0].DisplayPrice != 750.00 {
		t.Errorf("expected display price 750.00, got %v", items[0].DisplayPrice)
	}
}

func TestAdd_SameProductTwice(t *testing.T) {
	c := New()
	p := displayProduct(1, "Chocolate Truffle Cake", 10.00)

	c.Add(p)
	c.Add(p)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New()
	first := displayProduct(1, "Chocolate Truffle Cake", 10.00)
	second := displayProduct(2, "Butter Croissant", 2.50)

	c.Add(first)
	c.Add(second)
	// re-adding the first product updates in place, not re-appends
	c.Add(first)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[1].ProductID != 2 {
		t.Errorf("insertion order not preserved: got [%d, %d]", items[0].ProductID, items[1].ProductID)
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected first item quantity 2, got %d", items[0].Quantity)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))
	c.Add(displayProduct(2, "Butter Croissant", 2.50))

	c.Remove(1)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item after remove, got %d", len(items))
	}
	if items[0].ProductID != 2 {
		t.Errorf("expected remaining product 2, got %d", items[0].ProductID)
	}
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))

	c.Remove(99)

	if c.Len() != 1 {
		t.Errorf("removing absent id changed the cart: %d items", c.Len())
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		productID   int64
		newQuantity int
		wantQty     int
	}{
		{"sets quantity exactly", 1, 5, 5},
		{"zero is rejected", 1, 0, 3},
		{"negative is rejected", 1, -2, 3},
		{"missing product is a no-op", 99, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))
			c.UpdateQuantity(1, 3)

			c.UpdateQuantity(tt.productID, tt.newQuantity)

			items := c.Items()
			if len(items) != 1 {
				t.Fatalf("expected 1 line item, got %d", len(items))
			}
			if items[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	// cart = [{id:1, price:10.00, qty:2}, {id:2, price:5.00, qty:1}]
	c := New()
	cake := displayProduct(1, "Chocolate Truffle Cake", 10.00)
	loaf := displayProduct(2, "Sourdough Loaf", 5.00)

	c.Add(cake)
	c.Add(cake)
	c.Add(loaf)

	if got := c.Total(); got != 25.00 {
		t.Errorf("Total() = %v, want 25.00", got)
	}
	if got := c.DisplayTotal(); got != 1875.00 {
		t.Errorf("DisplayTotal() = %v, want 1875.00", got)
	}
}

func TestDisplayTotal_MatchesConvertedTotal(t *testing.T) {
	// displayTotal == round(total * rate, 2) for any cart contents
	c := New()
	c.Add(displayProduct(1, "Butter Croissant", 2.50))
	c.Add(displayProduct(2, "Blueberry Muffin", 2.75))
	c.Add(displayProduct(3, "Banana Bread", 4.25))
	c.UpdateQuantity(2, 3)

	want := currency.Round2(c.Total() * currency.DisplayRate)
	if got := c.DisplayTotal(); math.Abs(got-want) > 1e-9 {
		t.Errorf("DisplayTotal() = %v, want %v", got, want)
	}
}

func TestEmptyCart(t *testing.T) {
	c := New()

	if !c.IsEmpty() {
		t.Error("new cart should be empty")
	}
	if got := c.Total(); got != 0 {
		t.Errorf("empty cart Total() = %v, want 0", got)
	}
	if got := c.DisplayTotal(); got != 0 {
		t.Errorf("empty cart DisplayTotal() = %v, want 0", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))
	c.Add(displayProduct(2, "Butter Croissant", 2.50))

	c.Clear()

	if !c.IsEmpty() {
		t.Errorf("expected empty cart after Clear, got %d items", c.Len())
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(displayProduct(1, "Chocolate Truffle Cake", 10.00))

	items := c.Items()
	items[0].Quantity = 99

	if got := c.Items()[0].Quantity; got != 1 {
		t.Errorf("mutating the returned slice changed the cart: quantity %d", got)
	}
}
