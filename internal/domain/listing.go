package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing is an item published in the catalog
type Listing struct {
	ID        string
	Item      Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewListing wraps item with a fresh identifier
func NewListing(item Item) *Listing {
	now := time.Now()
	return &Listing{
		ID:        uuid.New().String(),
		Item:      item,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ItemRepository defines the contract for listing storage
type ItemRepository interface {
	Create(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindAll(ctx context.Context) ([]*Listing, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*Listing, error)
}

// Clone returns a copy of l whose item can be read without holding the
// repository lock.
func (l *Listing) Clone() *Listing {
	out := *l
	switch item := l.Item.(type) {
	case *DigitalCatalogItem:
		c := *item
		out.Item = &c
	case *CatalogItem:
		c := *item
		out.Item = &c
	}
	return &out
}
