package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        userDTO   `json:"user"`
}

type userDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type orderItemRequest struct {
	ProductID uuid.UUID   `json:"productId"`
	Quantity  int         `json:"quantity"`
	Width     *int        `json:"width"`
	Height    *int        `json:"height"`
	OptionIDs []uuid.UUID `json:"optionIds"`
}

type createSaleRequest struct {
	Items []orderItemRequest `json:"items"`
}

type createQuoteRequest struct {
	CustomerID    uuid.UUID          `json:"customerId"`
	Items         []orderItemRequest `json:"items"`
	DiscountCents int64              `json:"discountCents"`
	ShippingCents int64              `json:"shippingCents"`
	TaxCents      int64              `json:"taxCents"`
	Notes         *string            `json:"notes"`
	InternalNotes *string            `json:"internalNotes"`
}

type convertQuoteRequest struct {
	SaleStatus *models.OrderStatus `json:"saleStatus"`
}

type orderItemDTO struct {
	ID         uuid.UUID   `json:"id"`
	ProductID  uuid.UUID   `json:"productId"`
	Name       string      `json:"name"`
	PriceCents int64       `json:"priceCents"`
	Quantity   int         `json:"quantity"`
	Width      *int        `json:"width"`
	Height     *int        `json:"height"`
	OptionIDs  []uuid.UUID `json:"optionIds"`
}

type orderDTO struct {
	ID            uuid.UUID      `json:"id"`
	Code          string         `json:"code"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	SubtotalCents int64          `json:"subtotalCents"`
	DiscountCents int64          `json:"discountCents"`
	ShippingCents int64          `json:"shippingCents"`
	TaxCents      int64          `json:"taxCents"`
	TotalCents    int64          `json:"totalCents"`
	Notes         *string        `json:"notes,omitempty"`
	SourceQuoteID *uuid.UUID     `json:"sourceQuoteId,omitempty"`
	Items         []orderItemDTO `json:"items"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type listResponse[T any] struct {
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func toItemInputs(items []orderItemRequest) []service.OrderItemInput {
	out := make([]service.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, service.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Width:     it.Width,
			Height:    it.Height,
			OptionIDs: it.OptionIDs,
		})
	}
	return out
}

func toOrderDTO(o *models.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
			Width:      it.Width,
			Height:     it.Height,
			OptionIDs:  it.OptionIDs,
		})
	}
	return orderDTO{
		ID:            o.ID,
		Code:          o.Code,
		Type:          string(o.Type),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		SubtotalCents: o.SubtotalCents,
		DiscountCents: o.DiscountCents,
		ShippingCents: o.ShippingCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		Notes:         o.Notes,
		SourceQuoteID: o.SourceQuoteID,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}

func toOrderDTOs(list []models.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for i := range list {
		out = append(out, toOrderDTO(&list[i]))
	}
	return out
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}
