package domain

import (
	"github.com/go-faster/errors"
)

var (
	// ErrInvalidArgument is returned when a numeric field would become negative.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrListingNotFound = errors.New("listing not found")
	ErrDuplicateSKU    = errors.New("sku already listed")
)

func invalidArgument(msg string) error {
	return errors.Wrap(ErrInvalidArgument, msg)
}
