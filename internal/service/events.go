package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
	LineTotal  int64     `json:"line_total_cents"`
}

type OrderCreatedEvent struct {
	OrderID    uuid.UUID        `json:"order_id"`
	Code       string           `json:"code"`
	Type       string           `json:"type"`
	UserID     uuid.UUID        `json:"user_id"`
	Items      []OrderItemEvent `json:"items"`
	TotalCents int64            `json:"total_cents"`
	CreatedAt  time.Time        `json:"created_at"`
}

type QuoteConvertedEvent struct {
	QuoteID    uuid.UUID `json:"quote_id"`
	SaleID     uuid.UUID `json:"sale_id"`
	SaleCode   string    `json:"sale_code"`
	TotalCents int64     `json:"total_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishQuoteConverted(ctx context.Context, e QuoteConvertedEvent) error
}
