package suites

import (
	"github.com/mrops-br/storefront/internal/cart"
	"github.com/mrops-br/storefront/internal/demo"
	"github.com/mrops-br/storefront/internal/harness"
)

func Cart(h *harness.Harness) {
	items, errs := demo.Catalog()
	h.AssertEqual(0, len(errs), "Demo catalog should build without errors")

	c := cart.New(items...)
	totals := c.Totals()
	h.AssertEqual(6, totals.Items, "Cart should hold six items")
	h.AssertEqual(3, totals.Physical, "Cart should hold three physical items")
	h.AssertEqual(3, totals.Digital, "Cart should hold three digital items")
	h.AssertEqual("1704.94", totals.Value.StringFixed(2), "Cart total should add up")
}
