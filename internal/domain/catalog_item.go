package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CatalogItem represents a priced, identified product in the store
type CatalogItem struct {
	name  string
	price decimal.Decimal
	sku   string
}

// NewCatalogItem creates a new catalog item with validation
func NewCatalogItem(name string, price decimal.Decimal, sku string) (*CatalogItem, error) {
	if price.IsNegative() {
		return nil, invalidArgument("price cannot be negative")
	}

	return &CatalogItem{
		name:  name,
		price: price,
		sku:   sku,
	}, nil
}

func (c *CatalogItem) Name() string           { return c.name }
func (c *CatalogItem) Price() decimal.Decimal { return c.price }
func (c *CatalogItem) SKU() string            { return c.sku }

func (c *CatalogItem) SetName(name string) { c.name = name }
func (c *CatalogItem) SetSKU(sku string)   { c.sku = sku }

// SetPrice replaces the price. A negative price is rejected and the current
// price is kept.
func (c *CatalogItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalidArgument("price cannot be negative")
	}
	c.price = price
	return nil
}

// Description returns a human-readable line built from the item's fields
func (c *CatalogItem) Description() string {
	return fmt.Sprintf("%s (SKU: %s) priced at $%s", c.name, c.sku, c.price.StringFixed(2))
}

// Equal reports whether both items carry the same fields
func (c *CatalogItem) Equal(other *CatalogItem) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name && c.sku == other.sku && c.price.Equal(other.price)
}
