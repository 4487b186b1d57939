package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/pricing"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
)

type quoteService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
	log    *zap.Logger
}

func NewQuoteService(repo *repository.Repository, events EventBus, log *zap.Logger) QuoteService {
	return &quoteService{
		repo:   repo,
		events: events,
		now:    time.Now,
		log:    log,
	}
}

// CreateQuote prices the items exactly like a sale but never touches
// stock: a quote reserves nothing.
func (s *quoteService) CreateQuote(ctx context.Context, in CreateQuoteInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	var order *models.Order

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		customer, err := tx.Users.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		seen := make(map[uuid.UUID]bool, len(in.Items))
		productIDs := make([]uuid.UUID, 0, len(in.Items))
		for _, it := range in.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				productIDs = append(productIDs, it.ProductID)
			}
		}

		products, err := tx.Products.GetForCheckout(ctx, productIDs)
		if err != nil {
			return err
		}
		byID := productsByID(products)

		var (
			itemsDB  []models.OrderItem
			subtotal int64
		)

		for _, it := range in.Items {
			product, ok := byID[it.ProductID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
			}
			if !product.Active {
				return fmt.Errorf("%w: %s", pricing.ErrProductInactive, product.Name)
			}

			item, err := priceOrderItem(product, it)
			if err != nil {
				return err
			}

			subtotal += lineTotal(item)
			itemsDB = append(itemsDB, item)
		}

		total := orderTotal(subtotal, in.DiscountCents, in.ShippingCents, in.TaxCents)

		code, err := tx.Sequences.NextCode(ctx, seriesQuote, s.now().Year())
		if err != nil {
			return err
		}

		order = &models.Order{
			UserID:        in.CustomerID,
			Code:          code,
			Type:          models.OrderTypeQuote,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentUnpaid,
			SubtotalCents: subtotal,
			DiscountCents: in.DiscountCents,
			ShippingCents: in.ShippingCents,
			TaxCents:      in.TaxCents,
			TotalCents:    total,
			Notes:         in.Notes,
			InternalNotes: in.InternalNotes,
		}

		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}

		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}
		if err := tx.OrderItems.BulkCreate(ctx, itemsDB); err != nil {
			return err
		}

		ordWith, err := tx.Orders.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		order = ordWith
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.Info("quote created",
		zap.String("code", order.Code),
		zap.Int64("total_cents", order.TotalCents))

	if s.events != nil {
		_ = s.events.PublishOrderCreated(ctx, orderCreatedEvent(order))
	}

	return order, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	typ := models.OrderTypeQuote
	return s.repo.Orders.List(ctx, repository.OrderListFilter{
		Type:   &typ,
		Limit:  limit,
		Offset: offset,
	})
}

// ConvertToSale creates a SALE from an existing quote. The quote snapshot
// is trusted as-is: no re-pricing, no stock checks, the quoted totals are
// honored even if product prices changed since.
func (s *quoteService) ConvertToSale(ctx context.Context, quoteID uuid.UUID, opts ConvertQuoteOptions) (*models.Order, error) {
	var sale *models.Order

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		quote, err := tx.Orders.GetByIDAndType(ctx, quoteID, models.OrderTypeQuote)
		if err != nil {
			return err
		}
		if quote == nil {
			return ErrQuoteNotFound
		}

		existing, err := tx.Orders.FindBySourceQuote(ctx, quoteID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w (%s)", ErrAlreadyConverted, existing.Code)
		}

		code, err := tx.Sequences.NextCode(ctx, seriesSale, s.now().Year())
		if err != nil {
			return err
		}

		status := models.OrderStatusPending
		if opts.SaleStatus != nil {
			status = *opts.SaleStatus
		}

		sale = &models.Order{
			UserID:        quote.UserID,
			Code:          code,
			Type:          models.OrderTypeSale,
			Status:        status,
			PaymentStatus: models.PaymentUnpaid,
			SubtotalCents: quote.SubtotalCents,
			DiscountCents: quote.DiscountCents,
			ShippingCents: quote.ShippingCents,
			TaxCents:      quote.TaxCents,
			TotalCents:    quote.TotalCents,
			SourceQuoteID: &quote.ID,
		}

		if err := tx.Orders.Create(ctx, sale); err != nil {
			return err
		}

		// копируем позиции как новый снимок
		items := make([]models.OrderItem, 0, len(quote.Items))
		for _, it := range quote.Items {
			items = append(items, models.OrderItem{
				OrderID:    sale.ID,
				ProductID:  it.ProductID,
				Name:       it.Name,
				PriceCents: it.PriceCents,
				Quantity:   it.Quantity,
				Width:      it.Width,
				Height:     it.Height,
				OptionIDs:  it.OptionIDs,
			})
		}
		if err := tx.OrderItems.BulkCreate(ctx, items); err != nil {
			return err
		}

		saleWith, err := tx.Orders.GetByID(ctx, sale.ID)
		if err != nil {
			return err
		}
		sale = saleWith
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.Info("quote converted",
		zap.String("quote_id", quoteID.String()),
		zap.String("sale_code", sale.Code))

	if s.events != nil {
		_ = s.events.PublishQuoteConverted(ctx, QuoteConvertedEvent{
			QuoteID:    quoteID,
			SaleID:     sale.ID,
			SaleCode:   sale.Code,
			TotalCents: sale.TotalCents,
			OccurredAt: s.now(),
		})
	}

	return sale, nil
}
