package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mrops-br/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ItemRepository is an in-memory implementation of domain.ItemRepository.
// Listings are cloned on the way in and out so callers never share the
// stored items.
type ItemRepository struct {
	mu       sync.RWMutex
	listings map[string]*domain.Listing
	skus     map[string]string
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository(tracer trace.Tracer, logger *slog.Logger) *ItemRepository {
	return &ItemRepository{
		listings: make(map[string]*domain.Listing),
		skus:     make(map[string]string),
		tracer:   tracer,
		logger:   logger,
	}
}

// Create stores a new listing. SKUs are unique across the catalog.
func (r *ItemRepository) Create(ctx context.Context, listing *domain.Listing) error {
	ctx, span := r.tracer.Start(ctx, "ItemRepository.Create")
	defer span.End()

	sku := listing.Item.SKU()
	span.SetAttributes(
		attribute.String("item.id", listing.ID),
		attribute.String("item.sku", sku),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.skus[sku]; exists {
		span.RecordError(domain.ErrDuplicateSKU)
		span.SetStatus(codes.Error, "Duplicate SKU")
		r.logger.WarnContext(ctx, "SKU already listed",
			slog.String("sku", sku),
		)
		return domain.ErrDuplicateSKU
	}

	r.listings[listing.ID] = listing.Clone()
	r.skus[sku] = listing.ID

	r.logger.DebugContext(ctx, "Listing created in repository",
		slog.String("item_id", listing.ID),
		slog.String("sku", sku),
	)

	span.SetStatus(codes.Ok, "Listing created successfully")
	return nil
}

// FindByID retrieves a listing by ID
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, span := r.tracer.Start(ctx, "ItemRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, exists := r.listings[id]
	if !exists {
		span.RecordError(domain.ErrListingNotFound)
		span.SetStatus(codes.Error, "Listing not found")
		return nil, domain.ErrListingNotFound
	}

	r.logger.DebugContext(ctx, "Listing found in repository",
		slog.String("item_id", id),
	)

	span.SetStatus(codes.Ok, "Listing found")
	return listing.Clone(), nil
}

// FindAll retrieves all listings ordered by creation time, then SKU
func (r *ItemRepository) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	ctx, span := r.tracer.Start(ctx, "ItemRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	listings := make([]*domain.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		listings = append(listings, listing.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(listings, func(i, j int) bool {
		if !listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		}
		return listings[i].Item.SKU() < listings[j].Item.SKU()
	})

	span.SetAttributes(attribute.Int("item.count", len(listings)))

	r.logger.DebugContext(ctx, "Listings retrieved from repository",
		slog.Int("count", len(listings)),
	)

	span.SetStatus(codes.Ok, "Listings retrieved successfully")
	return listings, nil
}

// UpdatePrice sets a new price on the stored item. On a rejected price the
// stored item keeps its previous price.
func (r *ItemRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*domain.Listing, error) {
	ctx, span := r.tracer.Start(ctx, "ItemRepository.UpdatePrice")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	r.mu.Lock()
	defer r.mu.Unlock()

	listing, exists := r.listings[id]
	if !exists {
		span.RecordError(domain.ErrListingNotFound)
		span.SetStatus(codes.Error, "Listing not found")
		return nil, domain.ErrListingNotFound
	}

	if err := listing.Item.SetPrice(price); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Price rejected")
		return nil, err
	}
	listing.UpdatedAt = time.Now()

	r.logger.DebugContext(ctx, "Listing price updated in repository",
		slog.String("item_id", id),
	)

	span.SetStatus(codes.Ok, "Price updated")
	return listing.Clone(), nil
}
