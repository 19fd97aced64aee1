package suites

import (
	"fmt"
	"strings"

	"github.com/mrops-br/storefront/internal/domain"
	"github.com/mrops-br/storefront/internal/harness"
	"github.com/shopspring/decimal"
)

func ErrorHandling(h *harness.Harness) {
	errorsOnConstruction(h)
	errorsOnSetters(h)
	inputValidation(h)
	gracefulDegradation(h)
}

func errorsOnConstruction(h *harness.Harness) {
	h.AssertThrows(func() error {
		_, err := domain.NewCatalogItem("Test Product", decimal.NewFromInt(-50), "TEST-001")
		return err
	}, domain.ErrInvalidArgument, "Negative price should be rejected on creation")

	h.AssertThrows(func() error {
		_, err := domain.NewDigitalCatalogItem("Test Digital", decimal.NewFromInt(50), "DIGITAL-001",
			"https://test.example.com", "PDF", decimal.NewFromInt(-10))
		return err
	}, domain.ErrInvalidArgument, "Negative file size should be rejected on creation")
}

func errorsOnSetters(h *harness.Harness) {
	product, _ := domain.NewCatalogItem("Try-Catch Product", decimal.NewFromInt(200), "TRY-001")
	if !h.AssertNotNil(product, "Valid product should be created") {
		return
	}
	err := product.SetPrice(decimal.NewFromInt(-100))
	h.AssertTrue(err != nil && strings.Contains(err.Error(), "price cannot be negative"),
		"Error message should mention the negative price")

	digital, _ := domain.NewDigitalCatalogItem("Try-Catch Digital", decimal.NewFromInt(150), "TRY-DIGITAL-001",
		"https://try.example.com", "MP3", decimal.NewFromInt(5))
	if !h.AssertNotNil(digital, "Valid digital product should be created") {
		return
	}
	err = digital.SetFileSizeMB(decimal.NewFromInt(-1))
	h.AssertTrue(err != nil && strings.Contains(err.Error(), "file size cannot be negative"),
		"Error message should mention the negative file size")
}

func inputValidation(h *harness.Harness) {
	product, _ := domain.NewCatalogItem("Invalid Product", decimal.NewFromInt(400), "INVALID-001")
	if product == nil {
		h.AssertTrue(false, "Valid product should be created")
		return
	}
	h.AssertThrows(func() error { return product.SetPrice(decimal.NewFromInt(-1)) },
		domain.ErrInvalidArgument, "Invalid price should be rejected")
	h.AssertEqual(decimal.NewFromInt(400), product.Price(), "Price should remain unchanged after invalid input")

	digital, _ := domain.NewDigitalCatalogItem("Invalid Digital", decimal.NewFromInt(350), "INVALID-DIGITAL-001",
		"https://invalid.example.com", "PDF", decimal.NewFromInt(30))
	if digital == nil {
		h.AssertTrue(false, "Valid digital product should be created")
		return
	}
	h.AssertThrows(func() error { return digital.SetFileSizeMB(decimal.NewFromInt(-30)) },
		domain.ErrInvalidArgument, "Invalid file size should be rejected")
	h.AssertEqual(decimal.NewFromInt(30), digital.FileSizeMB(), "File size should remain unchanged after invalid input")
}

func gracefulDegradation(h *harness.Harness) {
	inputs := []struct {
		name  string
		price decimal.Decimal
	}{
		{"Graceful Product 1", decimal.NewFromInt(500)},
		{"Bad Product", decimal.NewFromInt(-5)},
		{"Graceful Product 2", decimal.NewFromInt(600)},
	}

	var created []*domain.CatalogItem
	failures := 0
	for i, in := range inputs {
		item, err := domain.NewCatalogItem(in.name, in.price, fmt.Sprintf("GRACEFUL-%03d", i+1))
		if err != nil {
			failures++
			continue
		}
		created = append(created, item)
	}

	h.AssertEqual(2, len(created), "Valid products should be processed successfully")
	h.AssertEqual(1, failures, "Invalid product should be skipped")
	if len(created) > 0 {
		h.AssertEqual("Graceful Product 1", created[0].Name(), "Product name should be preserved")
		h.AssertEqual(decimal.NewFromInt(500), created[0].Price(), "Product price should be preserved")
	}
}
