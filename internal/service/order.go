package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

// OrderItemInput is one requested line of a sale or quote. Width and
// Height are in the product's dimension unit; nil means not provided.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Width     *int
	Height    *int
	OptionIDs []uuid.UUID
}

type CreateSaleInput struct {
	Items []OrderItemInput
}

type CreateQuoteInput struct {
	CustomerID    uuid.UUID
	Items         []OrderItemInput
	DiscountCents int64
	ShippingCents int64
	TaxCents      int64
	Notes         *string
	InternalNotes *string
}

type ConvertQuoteOptions struct {
	SaleStatus *models.OrderStatus
}

type ListFilter struct {
	UserID *uuid.UUID
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderService interface {
	CreateSale(ctx context.Context, in CreateSaleInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
}

type QuoteService interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (*models.Order, error)
	ListQuotes(ctx context.Context, limit, offset int) ([]models.Order, int64, error)
	ConvertToSale(ctx context.Context, quoteID uuid.UUID, opts ConvertQuoteOptions) (*models.Order, error)
}
