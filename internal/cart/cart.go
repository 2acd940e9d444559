// Package cart implements the visitor's shopping cart.
//
// The cart is the single source of truth for item quantities. It is not safe for
// concurrent use; the owning session serializes access.
package cart

import (
	"math"

	"github.com/shopspring/decimal"
)

// Entry is one cart line. Quantity is always at least 1.
type Entry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price times quantity.
func (e Entry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart keeps entries in insertion order, at most one per name.
type Cart struct {
	entries []Entry
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// ChangeQuantity adds delta to the current quantity of name, clamping at zero and
// saturating at math.MaxInt.
// A positive result upserts the entry; zero removes it. The price is recorded only
// when the entry is created. Returns the resulting quantity.
func (c *Cart) ChangeQuantity(name string, price decimal.Decimal, delta int) int {
	i := c.find(name)

	current := 0
	if i >= 0 {
		current = c.entries[i].Quantity
	}

	var quantity int
	switch {
	case delta > 0 && current > math.MaxInt-delta:
		quantity = math.MaxInt
	case current+delta < 0:
		quantity = 0
	default:
		quantity = current + delta
	}

	switch {
	case quantity > 0 && i >= 0:
		c.entries[i].Quantity = quantity
	case quantity > 0:
		c.entries = append(c.entries, Entry{Name: name, Price: price, Quantity: quantity})
	case i >= 0:
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}

	return quantity
}

// Quantity returns the quantity of name, or 0 if it is not in the cart.
func (c *Cart) Quantity(name string) int {
	if i := c.find(name); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Total returns the sum of all subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// ItemCount returns the sum of all quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

func (c *Cart) find(name string) int {
	for i := range c.entries {
		if c.entries[i].Name == name {
			return i
		}
	}
	return -1
}
