package entity

import (
	"strings"

	"github.com/prasety/kasirku-api/pkg/money"
	"github.com/prasety/kasirku-api/pkg/utils"
)

const (
	// MaxNameLength is the longest accepted item name, in code points.
	MaxNameLength = 50
	// MaxQuantity is the ceiling for a single cart line.
	MaxQuantity = 999
)

// CartLine is one product line in the register's cart. The JSON shape is the
// persisted snapshot wire format and must stay backward-readable.
type CartLine struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	UnitPrice money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (l CartLine) Subtotal() money.Amount {
	return l.UnitPrice * money.Amount(l.Quantity)
}

// Cart is the in-memory transaction being built at a register. Lines keep
// insertion order and there is at most one line per case-insensitive name.
// Cart has no internal locking; the owning service serializes access.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from previously persisted lines.
func RestoreCart(lines []CartLine) *Cart {
	c := &Cart{lines: make([]CartLine, len(lines))}
	copy(c.lines, lines)
	return c
}

// Add merges into an existing line when the name matches case-insensitively
// (quantity +1), otherwise appends a fresh quantity-1 line. It returns the
// affected line and whether it was a merge.
func (c *Cart) Add(name string, price money.Amount) (CartLine, bool) {
	for i := range c.lines {
		if strings.EqualFold(c.lines[i].Name, name) {
			c.lines[i].Quantity++
			return c.lines[i], true
		}
	}

	line := CartLine{
		ID:        utils.NewLineID(),
		Name:      name,
		UnitPrice: price,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	return line, false
}

// IncreaseQuantity bumps a line by one. Unknown ids and lines already at
// MaxQuantity are a no-op; it reports whether anything changed.
func (c *Cart) IncreaseQuantity(id string) bool {
	for i := range c.lines {
		if c.lines[i].ID == id {
			if c.lines[i].Quantity >= MaxQuantity {
				return false
			}
			c.lines[i].Quantity++
			return true
		}
	}
	return false
}

// DecreaseQuantity lowers a line by one, never below 1. Reaching zero takes
// an explicit Remove.
func (c *Cart) DecreaseQuantity(id string) bool {
	for i := range c.lines {
		if c.lines[i].ID == id {
			if c.lines[i].Quantity <= 1 {
				return false
			}
			c.lines[i].Quantity--
			return true
		}
	}
	return false
}

// Remove deletes a line. An absent id is a no-op, not an error.
func (c *Cart) Remove(id string) bool {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total recomputes the sum of subtotals on every call.
func (c *Cart) Total() money.Amount {
	var total money.Amount
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line looks a line up by id.
func (c *Cart) Line(id string) (CartLine, bool) {
	for _, l := range c.lines {
		if l.ID == id {
			return l, true
		}
	}
	return CartLine{}, false
}

// LineByName looks a line up by case-insensitive name.
func (c *Cart) LineByName(name string) (CartLine, bool) {
	for _, l := range c.lines {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return CartLine{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the total quantity across all lines, used in the
// clear-cart confirmation prompt.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
