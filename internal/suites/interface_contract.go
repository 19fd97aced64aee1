package suites

import (
	"strings"

	"github.com/mrops-br/storefront/internal/domain"
	"github.com/mrops-br/storefront/internal/harness"
	"github.com/shopspring/decimal"
)

func InterfaceContract(h *harness.Harness) {
	product, _ := domain.NewCatalogItem("Interface Test Product", decimal.RequireFromString("199.99"), "INTERFACE-001")
	digital, _ := domain.NewDigitalCatalogItem("Interface Test Digital", decimal.RequireFromString("99.99"),
		"INTERFACE-DIGITAL-001", "https://interface.example.com", "PDF", decimal.RequireFromString("15.0"))
	if !h.AssertNotNil(product, "Product should be created") || !h.AssertNotNil(digital, "Digital product should be created") {
		return
	}

	var d domain.Describable = product
	h.AssertEqual("Interface Test Product", d.Name(), "Product Name() should return correct name")
	desc := d.Description()
	h.AssertTrue(strings.Contains(desc, "Interface Test Product"), "Product description should contain product name")
	h.AssertTrue(strings.Contains(desc, "INTERFACE-001"), "Product description should contain SKU")
	h.AssertTrue(strings.Contains(desc, "199.99"), "Product description should contain price")

	d = digital
	h.AssertEqual("Interface Test Digital", d.Name(), "Digital Name() should return correct name")
	desc = d.Description()
	for _, c := range []struct{ want, what string }{
		{"Interface Test Digital", "product name"},
		{"INTERFACE-DIGITAL-001", "SKU"},
		{"99.99", "price"},
		{"PDF", "file type"},
		{"15.0", "file size"},
		{"https://interface.example.com", "download URL"},
	} {
		h.AssertTrue(strings.Contains(desc, c.want), "Digital description should contain "+c.what)
	}

	describables := []domain.Describable{product, digital}
	for _, item := range describables {
		h.AssertTrue(item.Name() != "", "Name should not be empty")
		h.AssertTrue(item.Description() != "", "Description should not be empty")
	}
	h.AssertFalse(product.Description() == digital.Description(),
		"Product and digital product should have different descriptions")
}
