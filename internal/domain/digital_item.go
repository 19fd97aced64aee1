package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DigitalCatalogItem is a catalog item delivered as a download
type DigitalCatalogItem struct {
	CatalogItem

	downloadURL string
	fileType    string
	fileSizeMB  decimal.Decimal
}

// NewDigitalCatalogItem creates a new digital item with validation
func NewDigitalCatalogItem(
	name string,
	price decimal.Decimal,
	sku string,
	downloadURL string,
	fileType string,
	fileSizeMB decimal.Decimal,
) (*DigitalCatalogItem, error) {
	base, err := NewCatalogItem(name, price, sku)
	if err != nil {
		return nil, err
	}
	if fileSizeMB.IsNegative() {
		return nil, invalidArgument("file size cannot be negative")
	}

	return &DigitalCatalogItem{
		CatalogItem: *base,
		downloadURL: downloadURL,
		fileType:    fileType,
		fileSizeMB:  fileSizeMB,
	}, nil
}

func (d *DigitalCatalogItem) DownloadURL() string         { return d.downloadURL }
func (d *DigitalCatalogItem) FileType() string            { return d.fileType }
func (d *DigitalCatalogItem) FileSizeMB() decimal.Decimal { return d.fileSizeMB }

func (d *DigitalCatalogItem) SetDownloadURL(url string)   { d.downloadURL = url }
func (d *DigitalCatalogItem) SetFileType(fileType string) { d.fileType = fileType }

// SetFileSizeMB replaces the file size. A negative size is rejected and the
// current size is kept.
func (d *DigitalCatalogItem) SetFileSizeMB(size decimal.Decimal) error {
	if size.IsNegative() {
		return invalidArgument("file size cannot be negative")
	}
	d.fileSizeMB = size
	return nil
}

// Description extends the base description with the download metadata
func (d *DigitalCatalogItem) Description() string {
	return fmt.Sprintf("%s | Digital download: %s, %s MB from %s",
		d.CatalogItem.Description(), d.fileType, d.fileSizeMB.StringFixed(2), d.downloadURL)
}

// DownloadInstructions returns the numbered steps shown to a buyer
func (d *DigitalCatalogItem) DownloadInstructions() []string {
	return []string{
		"Click the download link: " + d.downloadURL,
		"Save the file to your device",
		"Open the file using " + strings.ToUpper(d.fileType) + "-compatible software",
		"Enjoy your digital product!",
	}
}

// Equal reports whether both items carry the same fields
func (d *DigitalCatalogItem) Equal(other *DigitalCatalogItem) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.CatalogItem.Equal(&other.CatalogItem) &&
		d.downloadURL == other.downloadURL &&
		d.fileType == other.fileType &&
		d.fileSizeMB.Equal(other.fileSizeMB)
}
