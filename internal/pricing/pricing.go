// Package pricing computes line-item prices for configurable print products.
// It is pure: no storage, no clock, no side effects. Both the sale and the
// quote workflow call into it so the algorithm exists exactly once.
package pricing

import (
	"fmt"
	"math"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

// PriceResult is the outcome for a single item. AreaM2 is diagnostic and
// only populated for AREA_M2 products.
type PriceResult struct {
	UnitPriceCents int64
	LineTotalCents int64
	AreaM2         *float64
}

// roundCents rounds to the nearest cent. Ties go away from zero in
// both directions, so a -2.5 cent adjustment becomes -3, not -2.
func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

func toMeters(value int, unit models.DimensionUnit) (float64, error) {
	switch unit {
	case models.DimensionCM:
		return float64(value) / 100, nil
	case models.DimensionMM:
		return float64(value) / 1000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimensionUnit, unit)
	}
}

func billableArea(p *models.Product, widthM, heightM float64) float64 {
	area := widthM * heightM
	if p.MinAreaM2 != nil && area < *p.MinAreaM2 {
		return *p.MinAreaM2
	}
	return area
}

func checkDimensions(p *models.Product, width, height int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width", ErrMissingDimension)
	}
	if p.PricingModel == models.PricingAreaM2 && height <= 0 {
		return fmt.Errorf("%w: height", ErrMissingDimension)
	}

	if p.Step != nil && *p.Step > 0 {
		step := *p.Step
		if width%step != 0 {
			return fmt.Errorf("%w: width must be a multiple of %d", ErrStepViolation, step)
		}
		if height > 0 && height%step != 0 {
			return fmt.Errorf("%w: height must be a multiple of %d", ErrStepViolation, step)
		}
	}

	if p.MinWidth != nil && width < *p.MinWidth {
		return fmt.Errorf("%w: width below %d", ErrDimensionOutOfRange, *p.MinWidth)
	}
	if p.MaxWidth != nil && width > *p.MaxWidth {
		return fmt.Errorf("%w: width above %d", ErrDimensionOutOfRange, *p.MaxWidth)
	}
	if height > 0 {
		if p.MinHeight != nil && height < *p.MinHeight {
			return fmt.Errorf("%w: height below %d", ErrDimensionOutOfRange, *p.MinHeight)
		}
		if p.MaxHeight != nil && height > *p.MaxHeight {
			return fmt.Errorf("%w: height above %d", ErrDimensionOutOfRange, *p.MaxHeight)
		}
	}
	return nil
}

// CalculateItemPrice computes the unit price and line total for one item.
//
// width and height are given in the product's DimensionUnit; zero means the
// dimension was not provided. selected must already satisfy the group
// selection rules (see ValidateSelection) and is folded in the order given:
// PERCENT modifiers apply against the running subtotal, so reordering the
// selection changes the result.
func CalculateItemPrice(p *models.Product, selected []models.Option, width, height, quantity int) (*PriceResult, error) {
	if !p.Active {
		return nil, fmt.Errorf("%w: %s", ErrProductInactive, p.Name)
	}
	if p.PricingModel == models.PricingQuote {
		return nil, fmt.Errorf("%w: %s", ErrQuoteOnly, p.Name)
	}

	needsDims := p.PricingModel == models.PricingAreaM2 || p.PricingModel == models.PricingLinearM
	if needsDims {
		if err := checkDimensions(p, width, height); err != nil {
			return nil, err
		}
	}

	var (
		baseCents int64
		areaM2    *float64
	)

	switch p.PricingModel {
	case models.PricingUnit:
		if p.BaseUnitPriceCents == nil {
			return nil, fmt.Errorf("%w: baseUnitPriceCents", ErrPricingNotConfigured)
		}
		baseCents = *p.BaseUnitPriceCents

	case models.PricingAreaM2:
		if p.BaseM2PriceCents == nil {
			return nil, fmt.Errorf("%w: baseM2PriceCents", ErrPricingNotConfigured)
		}
		wM, err := toMeters(width, p.DimensionUnit)
		if err != nil {
			return nil, err
		}
		hM, err := toMeters(height, p.DimensionUnit)
		if err != nil {
			return nil, err
		}
		raw := wM * hM
		areaM2 = &raw
		baseCents = roundCents(float64(*p.BaseM2PriceCents) * billableArea(p, wM, hM))

	case models.PricingLinearM:
		if p.BaseLinearMPriceCents == nil {
			return nil, fmt.Errorf("%w: baseLinearMPriceCents", ErrPricingNotConfigured)
		}
		lengthM, err := toMeters(width, p.DimensionUnit)
		if err != nil {
			return nil, err
		}
		baseCents = roundCents(float64(*p.BaseLinearMPriceCents) * lengthM)
	}

	subtotal := baseCents

	for _, opt := range selected {
		if !opt.Active {
			continue
		}

		switch opt.ModifierType {
		case models.ModifierFixedCents:
			subtotal += opt.ModifierValue

		case models.ModifierPerM2Cents:
			if p.PricingModel != models.PricingAreaM2 {
				return nil, fmt.Errorf("%w: PER_M2 option %q on %s product", ErrInvalidModifierForModel, opt.Name, p.PricingModel)
			}
			wM, err := toMeters(width, p.DimensionUnit)
			if err != nil {
				return nil, err
			}
			hM, err := toMeters(height, p.DimensionUnit)
			if err != nil {
				return nil, err
			}
			subtotal += roundCents(float64(opt.ModifierValue) * billableArea(p, wM, hM))

		case models.ModifierPercent:
			subtotal += roundCents(float64(subtotal) * float64(opt.ModifierValue) / 100)
		}
	}

	if p.MinPriceCents != nil && subtotal < *p.MinPriceCents {
		subtotal = *p.MinPriceCents
	}

	return &PriceResult{
		UnitPriceCents: subtotal,
		LineTotalCents: subtotal * int64(quantity),
		AreaM2:         areaM2,
	}, nil
}
