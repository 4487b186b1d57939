package pricing

import "errors"

// Domain failures of the pricing engine. Call sites wrap these with
// fmt.Errorf("%w: ...") to attach the offending product, field or group;
// the HTTP layer maps them to status codes with errors.Is.
var (
	// Product configuration problems (admin-facing).
	ErrQuoteOnly            = errors.New("product requires a quote")
	ErrPricingNotConfigured = errors.New("pricing not configured for model")

	// Bad client input.
	ErrProductInactive         = errors.New("product inactive")
	ErrMissingDimension        = errors.New("dimension is required")
	ErrStepViolation           = errors.New("dimension must respect step")
	ErrDimensionOutOfRange     = errors.New("dimension out of allowed range")
	ErrInvalidDimensionUnit    = errors.New("invalid dimension unit")
	ErrInvalidModifierForModel = errors.New("modifier not valid for pricing model")

	// Option selection problems.
	ErrMissingRequiredOption = errors.New("missing option(s) for group")
	ErrTooManyOptions        = errors.New("maxSelect exceeded for group")
)
