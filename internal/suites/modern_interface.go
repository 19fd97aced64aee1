package suites

import (
	"bytes"
	"strings"

	"github.com/mrops-br/storefront/internal/domain"
	"github.com/mrops-br/storefront/internal/harness"
	"github.com/shopspring/decimal"
)

func ModernInterface(h *harness.Harness) {
	product, _ := domain.NewCatalogItem("Default Test Product", decimal.RequireFromString("199.99"), "DEFAULT-001")
	digital, _ := domain.NewDigitalCatalogItem("Default Test Digital", decimal.RequireFromString("99.99"),
		"DEFAULT-DIGITAL-001", "https://default.example.com", "PDF", decimal.NewFromInt(15))
	if !h.AssertNotNil(product, "Product should be created") || !h.AssertNotNil(digital, "Digital product should be created") {
		return
	}

	for _, d := range []domain.Describable{product, digital} {
		var buf bytes.Buffer
		err := domain.PrintDescription(&buf, d)
		h.AssertTrue(err == nil, "PrintDescription should execute without error for "+d.Name())
		h.AssertTrue(strings.Contains(buf.String(), d.Description()), "PrintDescription should include the description")
	}

	h.AssertEqual("My Awesome Store", domain.ApplicationName, "ApplicationName should be 'My Awesome Store'")

	full := domain.Summary(product, len(product.Description()))
	h.AssertFalse(strings.HasSuffix(full, "..."), "Summary should not truncate a short description")
	short := domain.Summary(product, 10)
	h.AssertTrue(strings.HasSuffix(short, "..."), "Summary should truncate a long description")
	h.AssertTrue(strings.HasPrefix(short, product.Name()+" - "), "Summary should start with the name")
}
