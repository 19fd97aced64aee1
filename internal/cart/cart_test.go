package cart

import (
	"testing"

	"github.com/mrops-br/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cart_Totals(t *testing.T) {
	// given
	laptop, err := domain.NewCatalogItem("Gaming Laptop", decimal.RequireFromString("1299.99"), "LAP-001")
	require.NoError(t, err)
	ebook, err := domain.NewDigitalCatalogItem("E-Book", decimal.RequireFromString("29.99"), "EBOOK-001",
		"https://store.example.com/download/ebook-001", "PDF", decimal.RequireFromString("25.5"))
	require.NoError(t, err)

	c := New(laptop, ebook, nil)
	// when
	totals := c.Totals()
	// then
	assert.Equal(t, "1329.98", totals.Value.StringFixed(2))
	assert.Equal(t, 1, totals.Physical)
	assert.Equal(t, 1, totals.Digital)
	assert.Equal(t, 2, totals.Items)
	assert.Equal(t, 2, c.Len())
}

func Test_Cart_Empty(t *testing.T) {
	totals := New().Totals()

	assert.True(t, totals.Value.IsZero())
	assert.Zero(t, totals.Items)
}
