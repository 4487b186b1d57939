package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/pricing"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

// toHTTPError is the single place domain errors become status codes; the
// services themselves never know about HTTP.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrQuoteNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrOptionGroupNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrAlreadyConverted),
		errors.Is(err, service.ErrSlugAlreadyExists),
		errors.Is(err, service.ErrEmailAlreadyUsed),
		errors.Is(err, service.ErrInvalidGroupRules),
		errors.Is(err, pricing.ErrQuoteOnly),
		errors.Is(err, pricing.ErrPricingNotConfigured):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, pricing.ErrProductInactive),
		errors.Is(err, pricing.ErrMissingDimension),
		errors.Is(err, pricing.ErrStepViolation),
		errors.Is(err, pricing.ErrDimensionOutOfRange),
		errors.Is(err, pricing.ErrInvalidDimensionUnit),
		errors.Is(err, pricing.ErrInvalidModifierForModel),
		errors.Is(err, pricing.ErrMissingRequiredOption),
		errors.Is(err, pricing.ErrTooManyOptions):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
