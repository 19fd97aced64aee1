package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mrops-br/storefront/internal/app/dto"
	"github.com/mrops-br/storefront/internal/domain"
	"github.com/mrops-br/storefront/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace/noop"
)

func newService(t *testing.T) (*CatalogService, *sdkmetric.ManualReader) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	repo := memory.NewItemRepository(tracer, logger)
	return NewCatalogService(repo, tracer, meter, logger), reader
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func Test_CatalogService_CreateItem(t *testing.T) {
	testCases := []struct {
		name        string
		req         *dto.CreateItemRequest
		expectError error
		expectKind  string
	}{
		{
			name:       "Success - standard item",
			req:        &dto.CreateItemRequest{Name: "Widget", SKU: "SKU1", Price: price("10")},
			expectKind: domain.KindStandard,
		},
		{
			name: "Success - digital item",
			req: &dto.CreateItemRequest{Name: "Ebook", SKU: "E1", Price: price("9.99"), Digital: &dto.DigitalDetails{
				DownloadURL: "https://x.example/e1", FileType: "PDF", FileSizeMB: decimal.RequireFromString("2.5"),
			}},
			expectKind: domain.KindDigital,
		},
		{
			name:        "Error - negative price",
			req:         &dto.CreateItemRequest{Name: "Bad", SKU: "SKU2", Price: price("-5")},
			expectError: domain.ErrInvalidArgument,
		},
		{
			name: "Error - negative file size",
			req: &dto.CreateItemRequest{Name: "Ebook", SKU: "E2", Price: price("1"), Digital: &dto.DigitalDetails{
				DownloadURL: "https://x.example/e2", FileType: "PDF", FileSizeMB: decimal.RequireFromString("-1"),
			}},
			expectError: domain.ErrInvalidArgument,
		},
		{
			name:        "Error - missing price",
			req:         &dto.CreateItemRequest{Name: "Widget", SKU: "SKU3"},
			expectError: domain.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, reader := newService(t)
			// when
			resp, err := svc.CreateItem(context.Background(), tc.req)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, resp)
				assert.Zero(t, counterTotal(t, reader, "catalog.items.created.total"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectKind, resp.Kind)
			assert.Equal(t, int64(1), counterTotal(t, reader, "catalog.items.created.total"))
		})
	}
}

func Test_CatalogService_DuplicateSKU(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.CreateItem(ctx, &dto.CreateItemRequest{Name: "Widget", SKU: "SKU1", Price: price("1")})
	require.NoError(t, err)

	_, err = svc.CreateItem(ctx, &dto.CreateItemRequest{Name: "Other", SKU: "SKU1", Price: price("2")})

	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func Test_CatalogService_GetAndList(t *testing.T) {
	// given
	svc, reader := newService(t)
	ctx := context.Background()
	created, err := svc.CreateItem(ctx, &dto.CreateItemRequest{Name: "Widget", SKU: "SKU1", Price: price("10")})
	require.NoError(t, err)
	// when
	found, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	all, err := svc.ListItems(ctx)
	require.NoError(t, err)
	_, missingErr := svc.GetItem(ctx, "missing")
	// then
	assert.Equal(t, created.Description, found.Description)
	assert.Len(t, all, 1)
	assert.ErrorIs(t, missingErr, domain.ErrListingNotFound)
	assert.Equal(t, int64(4), counterTotal(t, reader, "catalog.operations"))
}

func Test_CatalogService_UpdatePrice(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, err := svc.CreateItem(ctx, &dto.CreateItemRequest{Name: "Widget", SKU: "SKU1", Price: price("400")})
	require.NoError(t, err)

	_, err = svc.UpdatePrice(ctx, created.ID, &dto.UpdatePriceRequest{Price: price("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	found, _ := svc.GetItem(ctx, created.ID)
	assert.Equal(t, "400.00", found.Price)

	updated, err := svc.UpdatePrice(ctx, created.ID, &dto.UpdatePriceRequest{Price: price("300")})
	require.NoError(t, err)
	assert.Equal(t, "300.00", updated.Price)

	_, err = svc.UpdatePrice(ctx, created.ID, &dto.UpdatePriceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
