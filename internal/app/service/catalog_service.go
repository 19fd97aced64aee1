package service

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/mrops-br/storefront/internal/app/dto"
	"github.com/mrops-br/storefront/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CatalogService handles catalog use cases
type CatalogService struct {
	repo               domain.ItemRepository
	tracer             trace.Tracer
	logger             *slog.Logger
	itemCreatedCounter metric.Int64Counter
	itemOperations     metric.Int64Counter
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo domain.ItemRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CatalogService {
	itemCreatedCounter, _ := meter.Int64Counter(
		"catalog.items.created.total",
		metric.WithDescription("Total number of catalog items created"),
	)

	itemOperations, _ := meter.Int64Counter(
		"catalog.operations",
		metric.WithDescription("Total number of catalog operations"),
	)

	return &CatalogService{
		repo:               repo,
		tracer:             tracer,
		logger:             logger,
		itemCreatedCounter: itemCreatedCounter,
		itemOperations:     itemOperations,
	}
}

func (s *CatalogService) record(ctx context.Context, operation, result string) {
	s.itemOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}

func (s *CatalogService) fail(ctx context.Context, span trace.Span, operation, result, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.logger.WarnContext(ctx, msg,
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.record(ctx, operation, result)
}

// CreateItem validates and lists a new item
func (s *CatalogService) CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateItem")
	defer span.End()

	span.SetAttributes(
		attribute.String("item.name", req.Name),
		attribute.String("item.sku", req.SKU),
		attribute.Bool("item.digital", req.Digital != nil),
	)

	s.logger.InfoContext(ctx, "Creating catalog item",
		slog.String("name", req.Name),
		slog.String("sku", req.SKU),
	)

	if err := req.Validate(); err != nil {
		s.fail(ctx, span, "create", "invalid", "Validation failed", err)
		return nil, err
	}

	item, err := req.ToItem()
	if err != nil {
		s.fail(ctx, span, "create", "invalid", "Validation failed", err)
		return nil, err
	}

	listing := domain.NewListing(item)
	span.SetAttributes(attribute.String("item.id", listing.ID))

	if err := s.repo.Create(ctx, listing); err != nil {
		s.fail(ctx, span, "create", "failure", "Failed to store item", err)
		return nil, err
	}

	s.itemCreatedCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", domain.Kind(item))),
	)
	s.record(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Catalog item created successfully",
		slog.String("item_id", listing.ID),
	)

	span.SetStatus(codes.Ok, "Item created successfully")
	return dto.ToItemResponse(listing), nil
}

// GetItem retrieves a listed item by ID
func (s *CatalogService) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetItem")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, "read", "not_found", "Item not found", err)
		return nil, err
	}

	s.record(ctx, "read", "success")
	span.SetStatus(codes.Ok, "Item retrieved successfully")
	return dto.ToItemResponse(listing), nil
}

// ListItems retrieves all listed items
func (s *CatalogService) ListItems(ctx context.Context) ([]*dto.ItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListItems")
	defer span.End()

	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.fail(ctx, span, "list", "failure", "Failed to list items", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("item.count", len(listings)))
	s.record(ctx, "list", "success")

	s.logger.InfoContext(ctx, "Catalog items listed successfully",
		slog.Int("count", len(listings)),
	)

	span.SetStatus(codes.Ok, "Items listed successfully")
	return dto.ToItemResponseList(listings), nil
}

// UpdatePrice changes the price of a listed item. A rejected price leaves the
// stored item untouched.
func (s *CatalogService) UpdatePrice(ctx context.Context, id string, req *dto.UpdatePriceRequest) (*dto.ItemResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdatePrice")
	defer span.End()

	span.SetAttributes(attribute.String("item.id", id))

	if err := req.Validate(); err != nil {
		s.fail(ctx, span, "update_price", "invalid", "Validation failed", err)
		return nil, err
	}
	span.SetAttributes(attribute.String("item.price", req.Price.String()))

	listing, err := s.repo.UpdatePrice(ctx, id, *req.Price)
	if err != nil {
		result := "failure"
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			result = "invalid"
		case errors.Is(err, domain.ErrListingNotFound):
			result = "not_found"
		}
		s.fail(ctx, span, "update_price", result, "Failed to update price", err)
		return nil, err
	}

	s.record(ctx, "update_price", "success")
	s.logger.InfoContext(ctx, "Catalog item price updated",
		slog.String("item_id", id),
		slog.String("price", listing.Item.Price().StringFixed(2)),
	)

	span.SetStatus(codes.Ok, "Price updated successfully")
	return dto.ToItemResponse(listing), nil
}
