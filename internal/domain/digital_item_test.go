package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newEbook(t *testing.T) *DigitalCatalogItem {
	t.Helper()
	item, err := NewDigitalCatalogItem("Interface Test Digital", decimal.RequireFromString("99.99"),
		"INTERFACE-DIGITAL-001", "https://interface.example.com", "PDF", decimal.RequireFromString("15.0"))
	require.NoError(t, err)
	return item
}

func Test_NewDigitalCatalogItem(t *testing.T) {
	testCases := []struct {
		name        string
		price       string
		size        string
		expectError string
	}{
		{name: "Success", price: "50.00", size: "10.5"},
		{name: "Error - negative price", price: "-1", size: "10.5", expectError: "price cannot be negative"},
		{name: "Error - negative size", price: "50.00", size: "-10", expectError: "file size cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			item, err := NewDigitalCatalogItem("Test Digital", decimal.RequireFromString(tc.price), "DIGITAL-001",
				"https://example.com/file", "PDF", decimal.RequireFromString(tc.size))
			// then
			if tc.expectError != "" {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tc.expectError)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.size).Equal(item.FileSizeMB()))
		})
	}
}

func Test_DigitalCatalogItem_Description(t *testing.T) {
	item := newEbook(t)

	desc := item.Description()
	for _, want := range []string{"Interface Test Digital", "INTERFACE-DIGITAL-001", "99.99", "PDF", "15.0", "https://interface.example.com"} {
		assert.Contains(t, desc, want)
	}
	assert.NotEqual(t, item.CatalogItem.Description(), desc)
	assert.Equal(t, KindDigital, Kind(item))
	assert.Equal(t, KindStandard, Kind(&item.CatalogItem))
}

func Test_DigitalCatalogItem_SetFileSizeMB(t *testing.T) {
	item := newEbook(t)

	err := item.SetFileSizeMB(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, decimal.RequireFromString("15.0").Equal(item.FileSizeMB()))

	require.NoError(t, item.SetFileSizeMB(decimal.NewFromInt(30)))
	assert.True(t, decimal.NewFromInt(30).Equal(item.FileSizeMB()))
}

func Test_DigitalCatalogItem_SizeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := drawCents(t, "size", 0, 10_000_00)
		item, err := NewDigitalCatalogItem("Course", decimal.NewFromInt(1), "C-1", "https://x.example", "MP4", size)
		require.NoError(t, err)
		assert.True(t, size.Equal(item.FileSizeMB()))

		bad := drawCents(t, "bad", -10_000_00, -1)
		_, err = NewDigitalCatalogItem("Course", decimal.NewFromInt(1), "C-1", "https://x.example", "MP4", bad)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		assert.ErrorIs(t, item.SetFileSizeMB(bad), ErrInvalidArgument)
		assert.True(t, size.Equal(item.FileSizeMB()))
	})
}

func Test_DigitalCatalogItem_DownloadInstructions(t *testing.T) {
	item := newEbook(t)

	steps := item.DownloadInstructions()
	require.Len(t, steps, 4)
	assert.Contains(t, steps[0], "https://interface.example.com")
}
