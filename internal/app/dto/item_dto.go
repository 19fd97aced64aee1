package dto

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mrops-br/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// SummaryLength bounds the description excerpt returned with every item
const SummaryLength = 60

// maxDecimalExponent caps the positive exponent of submitted amounts so that
// formatting them stays bounded.
const maxDecimalExponent = 12

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"dscale": decimalScale,
		"dmin":   decimalMin,
		"dmax":   decimalMax,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return d, ok
}

// decimalScale allows at most param fractional digits and a bounded exponent
func decimalScale(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	places := decimal.RequireFromString(fl.Param()).IntPart()
	exp := int64(d.Exponent())
	return exp >= -places && exp <= maxDecimalExponent
}

func decimalMin(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.GreaterThanOrEqual(decimal.RequireFromString(fl.Param()))
}

func decimalMax(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.LessThanOrEqual(decimal.RequireFromString(fl.Param()))
}

// DigitalDetails carries the download metadata of a digital item
type DigitalDetails struct {
	DownloadURL string          `json:"download_url" validate:"required,url"`
	FileType    string          `json:"file_type" validate:"required,max=50"`
	FileSizeMB  decimal.Decimal `json:"file_size_mb" validate:"dscale=2,dmin=0,dmax=10000000"`
}

// CreateItemRequest represents the request to list an item. A non-nil
// Digital block makes it a digital item.
type CreateItemRequest struct {
	Name    string           `json:"name" validate:"required,max=200"`
	SKU     string           `json:"sku" validate:"required,max=64"`
	Price   *decimal.Decimal `json:"price" validate:"required,dscale=2,dmin=0,dmax=1000000000"`
	Digital *DigitalDetails  `json:"digital,omitempty"`
}

// UpdatePriceRequest represents the request to change an item's price
type UpdatePriceRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required,dscale=2,dmin=0,dmax=1000000000"`
}

// ItemResponse represents the item response
type ItemResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	DownloadURL string    `json:"download_url,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	FileSizeMB  string    `json:"file_size_mb,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *CreateItemRequest) Validate() error {
	return check(r)
}

func (r *UpdatePriceRequest) Validate() error {
	return check(r)
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Wrap(domain.ErrInvalidArgument, err.Error())
	}
	return nil
}

// ToItem builds the domain item described by the request
func (r *CreateItemRequest) ToItem() (domain.Item, error) {
	if r.Digital != nil {
		item, err := domain.NewDigitalCatalogItem(r.Name, *r.Price, r.SKU,
			r.Digital.DownloadURL, r.Digital.FileType, r.Digital.FileSizeMB)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	item, err := domain.NewCatalogItem(r.Name, *r.Price, r.SKU)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ToItemResponse converts a domain Listing to ItemResponse
func ToItemResponse(l *domain.Listing) *ItemResponse {
	resp := &ItemResponse{
		ID:          l.ID,
		Kind:        domain.Kind(l.Item),
		Name:        l.Item.Name(),
		SKU:         l.Item.SKU(),
		Price:       l.Item.Price().StringFixed(2),
		Description: l.Item.Description(),
		Summary:     domain.Summary(l.Item, SummaryLength),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if d, ok := l.Item.(*domain.DigitalCatalogItem); ok {
		resp.DownloadURL = d.DownloadURL()
		resp.FileType = d.FileType()
		resp.FileSizeMB = d.FileSizeMB().StringFixed(2)
	}
	return resp
}

// ToItemResponseList converts a list of domain Listings to ItemResponse list
func ToItemResponseList(listings []*domain.Listing) []*ItemResponse {
	responses := make([]*ItemResponse, len(listings))
	for i, l := range listings {
		responses[i] = ToItemResponse(l)
	}
	return responses
}
