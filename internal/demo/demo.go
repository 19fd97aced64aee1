// Package demo prints a walkthrough of a fixed shopping cart.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/mrops-br/storefront/internal/cart"
	"github.com/mrops-br/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type standardSpec struct {
	name, price, sku string
}

type digitalSpec struct {
	name, price, sku, url, fileType, size string
}

var (
	standardItems = []standardSpec{
		{"Gaming Laptop", "1299.99", "LAP-001"},
		{"Java Programming Guide", "49.99", "BOOK-001"},
		{"Developer T-Shirt", "24.99", "SHIRT-001"},
	}
	digitalItems = []digitalSpec{
		{"E-Book: Advanced Java", "29.99", "EBOOK-001", "https://store.example.com/download/ebook-001", "PDF", "25.5"},
		{"Online Course: OOP Mastery", "99.99", "COURSE-001", "https://learn.example.com/course-oop-mastery", "Video Files", "2100.0"},
		{"IDE Software License", "199.99", "SOFT-001", "https://download.example.com/ide-license", "License Key", "0.1"},
	}
)

// Catalog builds the demo items. Items that fail validation are left out
// and their errors returned alongside.
func Catalog() ([]domain.Item, []error) {
	var items []domain.Item
	var errs []error

	for _, s := range standardItems {
		item, err := domain.NewCatalogItem(s.name, decimal.RequireFromString(s.price), s.sku)
		if err != nil {
			errs = append(errs, errors.Wrap(err, s.sku))
			continue
		}
		items = append(items, item)
	}
	for _, s := range digitalItems {
		item, err := domain.NewDigitalCatalogItem(s.name, decimal.RequireFromString(s.price), s.sku,
			s.url, s.fileType, decimal.RequireFromString(s.size))
		if err != nil {
			errs = append(errs, errors.Wrap(err, s.sku))
			continue
		}
		items = append(items, item)
	}

	return items, errs
}

// Run prints every cart item followed by the cart summary
func Run(w io.Writer, logger *slog.Logger) cart.Totals {
	items, errs := Catalog()
	for _, err := range errs {
		logger.Error("Skipping invalid demo item", slog.String("error", err.Error()))
	}

	c := cart.New(items...)

	fmt.Fprintf(w, "=== %s ===\n\n", domain.ApplicationName)
	fmt.Fprintf(w, "Shopping cart contains %d items\n\n", c.Len())

	for i, item := range c.Items() {
		fmt.Fprintf(w, "--- Shopping Cart Item %d (%s) ---\n", i+1, domain.Kind(item))
		_ = domain.PrintDescription(w, item)
		if digital, ok := item.(*domain.DigitalCatalogItem); ok {
			fmt.Fprintln(w, "Download Instructions:")
			for n, step := range digital.DownloadInstructions() {
				fmt.Fprintf(w, "  %d. %s\n", n+1, step)
			}
		}
		fmt.Fprintln(w)
	}

	totals := c.Totals()
	fmt.Fprintln(w, "=== Cart Summary ===")
	fmt.Fprintf(w, "Total Cart Value: $%s\n", totals.Value.StringFixed(2))
	fmt.Fprintf(w, "Physical Products: %d\n", totals.Physical)
	fmt.Fprintf(w, "Digital Products: %d\n", totals.Digital)
	fmt.Fprintf(w, "Total Items: %d\n", totals.Items)

	logger.Info("Demo finished",
		slog.Int("items", totals.Items),
		slog.String("total", totals.Value.StringFixed(2)),
	)
	return totals
}
