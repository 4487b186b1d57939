package service

import (
	"github.com/google/uuid"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/pricing"
)

const (
	seriesSale  = "PED" // pedido
	seriesQuote = "ORC" // orçamento
)

// priceOrderItem runs the shared validation and pricing for one requested
// line and returns its snapshot. Stock is the caller's concern: quotes
// reserve nothing, sales decrement inside their transaction.
func priceOrderItem(p *models.Product, in OrderItemInput) (models.OrderItem, error) {
	if in.Quantity <= 0 {
		return models.OrderItem{}, ErrQuantityInvalid
	}

	if err := pricing.ValidateSelection(p.OptionGroups, in.OptionIDs); err != nil {
		return models.OrderItem{}, err
	}
	selected := pricing.ResolveSelection(p.OptionGroups, in.OptionIDs)

	width, height := 0, 0
	if in.Width != nil {
		width = *in.Width
	}
	if in.Height != nil {
		height = *in.Height
	}

	res, err := pricing.CalculateItemPrice(p, selected, width, height, in.Quantity)
	if err != nil {
		return models.OrderItem{}, err
	}

	return models.OrderItem{
		ProductID:  p.ID,
		Name:       p.Name,
		PriceCents: res.UnitPriceCents,
		Quantity:   in.Quantity,
		Width:      in.Width,
		Height:     in.Height,
		OptionIDs:  in.OptionIDs,
	}, nil
}

func lineTotal(it models.OrderItem) int64 {
	return it.PriceCents * int64(it.Quantity)
}

func orderTotal(subtotal, discount, shipping, tax int64) int64 {
	total := subtotal - discount + shipping + tax
	if total < 0 {
		total = 0
	}
	return total
}

func productsByID(list []models.Product) map[uuid.UUID]*models.Product {
	byID := make(map[uuid.UUID]*models.Product, len(list))
	for i := range list {
		byID[list[i].ID] = &list[i]
	}
	return byID
}
