// Package cart groups catalog items for checkout totals.
package cart

import (
	"github.com/mrops-br/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Cart holds items in insertion order
type Cart struct {
	items []domain.Item
}

// Totals summarises a cart
type Totals struct {
	Value    decimal.Decimal
	Physical int
	Digital  int
	Items    int
}

func New(items ...domain.Item) *Cart {
	c := &Cart{}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add appends item to the cart. Nil items are ignored.
func (c *Cart) Add(item domain.Item) {
	if item == nil {
		return
	}
	c.items = append(c.items, item)
}

func (c *Cart) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Totals returns the cart value and per-kind counts
func (c *Cart) Totals() Totals {
	t := Totals{Value: decimal.Zero, Items: len(c.items)}
	for _, item := range c.items {
		t.Value = t.Value.Add(item.Price())
		if domain.Kind(item) == domain.KindDigital {
			t.Digital++
		} else {
			t.Physical++
		}
	}
	return t
}
