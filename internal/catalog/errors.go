package catalog

import "errors"

// Error kinds returned by the admission and repricing pipeline. Callers match
// them with errors.Is; the wrapped message carries the human-readable detail.
var (
	ErrInvalidCategory            = errors.New("invalid category")
	ErrPremiumPriceTooLow         = errors.New("premium price too low")
	ErrNegativeStock              = errors.New("negative stock")
	ErrNonPositiveDiscountedPrice = errors.New("non-positive discounted price")
	ErrPriceExceedsOriginal       = errors.New("price exceeds original")
	ErrNotFound                   = errors.New("not found")
)

// IsValidationError reports whether err is one of the input validation kinds,
// as opposed to a missing record or a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrPremiumPriceTooLow) ||
		errors.Is(err, ErrNegativeStock) ||
		errors.Is(err, ErrNonPositiveDiscountedPrice) ||
		errors.Is(err, ErrPriceExceedsOriginal)
}
