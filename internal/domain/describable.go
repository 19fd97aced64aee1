package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// ApplicationName is the storefront name shown on every surface
const ApplicationName = "My Awesome Store"

// Describable is anything that can present a name and a description
type Describable interface {
	Name() string
	Description() string
}

// Item is a sellable catalog entry
type Item interface {
	Describable
	SKU() string
	Price() decimal.Decimal
	SetPrice(price decimal.Decimal) error
}

const (
	KindStandard = "standard"
	KindDigital  = "digital"
)

var (
	_ Item = (*CatalogItem)(nil)
	_ Item = (*DigitalCatalogItem)(nil)
)

// Kind classifies an item as standard or digital
func Kind(item Item) string {
	if _, ok := item.(*DigitalCatalogItem); ok {
		return KindDigital
	}
	return KindStandard
}

// Summary returns "name - description", truncating the description to
// maxLength runes and appending an ellipsis when it is longer.
func Summary(d Describable, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	desc := []rune(d.Description())
	if len(desc) > maxLength {
		return d.Name() + " - " + string(desc[:maxLength]) + "..."
	}
	return d.Name() + " - " + string(desc)
}

// PrintDescription writes the name and description of d to w
func PrintDescription(w io.Writer, d Describable) error {
	_, err := fmt.Fprintf(w, "Name: %s\nDescription: %s\n", d.Name(), d.Description())
	return err
}
