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

type orderService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		now:    time.Now,
		log:    log,
	}
}

func requireAuth(ctx context.Context) (uuid.UUID, models.Role, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", ErrUnauthorized
	}
	role, _ := RoleFromContext(ctx) // без роли считаем customer
	return uid, role, nil
}

// CreateSale runs the whole direct-sale workflow in one transaction:
// option validation, stock decrement, pricing, code allocation and order
// persistence. Any item failure rolls everything back.
func (s *orderService) CreateSale(ctx context.Context, in CreateSaleInput) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	var order *models.Order

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
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

			// списываем остаток только у товаров с учётом склада
			if product.Stock != nil {
				ok, err := tx.Stocks.TryDecrement(ctx, product.ID, it.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
				}
			}

			item, err := priceOrderItem(product, it)
			if err != nil {
				return err
			}

			subtotal += lineTotal(item)
			itemsDB = append(itemsDB, item)
		}

		// прямая продажа идёт без скидки/доставки/налога, эти поля заполняются только в котировках
		total := orderTotal(subtotal, 0, 0, 0)

		code, err := tx.Sequences.NextCode(ctx, seriesSale, s.now().Year())
		if err != nil {
			return err
		}

		order = &models.Order{
			UserID:        userID,
			Code:          code,
			Type:          models.OrderTypeSale,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentUnpaid,
			SubtotalCents: subtotal,
			TotalCents:    total,
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

	s.log.Info("sale created",
		zap.String("code", order.Code),
		zap.Int64("total_cents", order.TotalCents),
		zap.Int("items", len(order.Items)))

	if s.events != nil {
		_ = s.events.PublishOrderCreated(ctx, orderCreatedEvent(order))
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if role == models.RoleAdmin {
		ord, err = s.repo.Orders.GetByID(ctx, id)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	if role != models.RoleAdmin {
		f.UserID = &userID
	}

	typ := models.OrderTypeSale
	return s.repo.Orders.List(ctx, repository.OrderListFilter{
		UserID: f.UserID,
		Type:   &typ,
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func orderCreatedEvent(o *models.Order) OrderCreatedEvent {
	items := make([]OrderItemEvent, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEvent{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
			LineTotal:  it.PriceCents * int64(it.Quantity),
		})
	}
	return OrderCreatedEvent{
		OrderID:    o.ID,
		Code:       o.Code,
		Type:       string(o.Type),
		UserID:     o.UserID,
		Items:      items,
		TotalCents: o.TotalCents,
		CreatedAt:  o.CreatedAt,
	}
}
