package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/pricing"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

func TestCreateQuote_NoStockMutation(t *testing.T) {
	product := unitProduct(5000, 2)
	customerID := uuid.New()

	var (
		decrementCalled bool
		createdItems    []models.OrderItem
		createdOrder    *models.Order
	)

	repo := &repository.Repository{
		Users: &MockUserRepo{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
				require.Equal(t, customerID, id)
				return &models.User{ID: id, Role: models.RoleCustomer}, nil
			},
		},
		Products: &MockProductRepo{
			GetForCheckoutFunc: func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
				return []models.Product{product}, nil
			},
		},
		Stocks: &MockStockRepo{
			TryDecrementFunc: func(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
				decrementCalled = true
				return true, nil
			},
		},
		Sequences: &MockSequenceRepo{
			NextCodeFunc: func(ctx context.Context, key string, year int) (string, error) {
				require.Equal(t, "ORC", key)
				return "ORC-2026-000003", nil
			},
		},
		Orders: &MockOrderRepo{
			CreateFunc: func(ctx context.Context, o *models.Order) error {
				o.ID = uuid.New()
				createdOrder = o
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
				out := *createdOrder
				out.Items = createdItems
				return &out, nil
			},
		},
		OrderItems: &MockOrderItemRepo{
			BulkCreateFunc: func(ctx context.Context, items []models.OrderItem) error {
				createdItems = items
				return nil
			},
		},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	notes := "entrega combinada para sexta"
	internal := "cliente pediu desconto"

	quote, err := svc.CreateQuote(context.Background(), service.CreateQuoteInput{
		CustomerID:    customerID,
		Items:         []service.OrderItemInput{{ProductID: product.ID, Quantity: 10}},
		DiscountCents: 5000,
		ShippingCents: 2000,
		TaxCents:      1000,
		Notes:         &notes,
		InternalNotes: &internal,
	})
	require.NoError(t, err)

	require.False(t, decrementCalled, "quote must not touch stock")

	require.Equal(t, "ORC-2026-000003", quote.Code)
	require.Equal(t, models.OrderTypeQuote, quote.Type)
	require.Equal(t, customerID, quote.UserID)
	require.Equal(t, int64(50000), quote.SubtotalCents)
	require.Equal(t, int64(5000), quote.DiscountCents)
	require.Equal(t, int64(2000), quote.ShippingCents)
	require.Equal(t, int64(1000), quote.TaxCents)
	require.Equal(t, int64(48000), quote.TotalCents)
	require.Equal(t, &notes, quote.Notes)
	require.Equal(t, &internal, quote.InternalNotes)
	require.Len(t, quote.Items, 1)
}

func TestCreateQuote_InactiveBeforeSelection(t *testing.T) {
	// неактивный товар отклоняется сразу после выборки, даже когда
	// обязательная группа опций тоже не заполнена
	product := unitProduct(5000, 2)
	product.Active = false
	product.OptionGroups = []models.OptionGroup{
		{ID: uuid.New(), ProductID: product.ID, Name: "Acabamento", Required: true, MinSelect: 1, MaxSelect: 1},
	}

	repo := &repository.Repository{
		Users: &MockUserRepo{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleCustomer}, nil
			},
		},
		Products: &MockProductRepo{
			GetForCheckoutFunc: func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
				return []models.Product{product}, nil
			},
		},
		Sequences:  &MockSequenceRepo{},
		Orders:     &MockOrderRepo{},
		OrderItems: &MockOrderItemRepo{},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	_, err := svc.CreateQuote(context.Background(), service.CreateQuoteInput{
		CustomerID: uuid.New(),
		Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, pricing.ErrProductInactive)
}

func TestCreateQuote_CustomerNotFound(t *testing.T) {
	repo := &repository.Repository{
		Users: &MockUserRepo{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
				return nil, nil
			},
		},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	_, err := svc.CreateQuote(context.Background(), service.CreateQuoteInput{
		CustomerID: uuid.New(),
		Items:      []service.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrCustomerNotFound)
}

func TestCreateQuote_TotalFlooredAtZero(t *testing.T) {
	product := unitProduct(100, 0)
	product.Stock = nil
	customerID := uuid.New()

	var captured *models.Order

	repo := &repository.Repository{
		Users: &MockUserRepo{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
				return &models.User{ID: id}, nil
			},
		},
		Products: &MockProductRepo{
			GetForCheckoutFunc: func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
				return []models.Product{product}, nil
			},
		},
		Sequences: &MockSequenceRepo{},
		Orders: &MockOrderRepo{
			CreateFunc: func(ctx context.Context, o *models.Order) error {
				o.ID = uuid.New()
				captured = o
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
				return captured, nil
			},
		},
		OrderItems: &MockOrderItemRepo{},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	_, err := svc.CreateQuote(context.Background(), service.CreateQuoteInput{
		CustomerID:    customerID,
		Items:         []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		DiscountCents: 10_000, // скидка больше подытога
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), captured.TotalCents)
}

func TestConvertToSale_CopiesQuoteSnapshot(t *testing.T) {
	quoteID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()
	width, height := 200, 100

	quote := &models.Order{
		ID:            quoteID,
		UserID:        customerID,
		Code:          "ORC-2026-000010",
		Type:          models.OrderTypeQuote,
		SubtotalCents: 12000,
		DiscountCents: 1000,
		ShippingCents: 500,
		TaxCents:      0,
		TotalCents:    11500,
		Items: []models.OrderItem{
			{
				ProductID:  productID,
				Name:       "Banner em lona",
				PriceCents: 12000,
				Quantity:   1,
				Width:      &width,
				Height:     &height,
				OptionIDs:  []uuid.UUID{uuid.New()},
			},
		},
	}

	var (
		createdSale  *models.Order
		createdItems []models.OrderItem
	)

	repo := &repository.Repository{
		Orders: &MockOrderRepo{
			GetByIDAndTypeFunc: func(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error) {
				require.Equal(t, models.OrderTypeQuote, typ)
				return quote, nil
			},
			FindBySourceQuoteFunc: func(ctx context.Context, qid uuid.UUID) (*models.Order, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, o *models.Order) error {
				o.ID = uuid.New()
				createdSale = o
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
				out := *createdSale
				out.Items = createdItems
				return &out, nil
			},
		},
		Sequences: &MockSequenceRepo{
			NextCodeFunc: func(ctx context.Context, key string, year int) (string, error) {
				require.Equal(t, "PED", key)
				return "PED-2026-000099", nil
			},
		},
		OrderItems: &MockOrderItemRepo{
			BulkCreateFunc: func(ctx context.Context, items []models.OrderItem) error {
				createdItems = items
				return nil
			},
		},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	sale, err := svc.ConvertToSale(context.Background(), quoteID, service.ConvertQuoteOptions{})
	require.NoError(t, err)

	require.Equal(t, "PED-2026-000099", sale.Code)
	require.Equal(t, models.OrderTypeSale, sale.Type)
	require.Equal(t, customerID, sale.UserID)
	require.NotNil(t, sale.SourceQuoteID)
	require.Equal(t, quoteID, *sale.SourceQuoteID)

	// суммы берутся из котировки без пересчёта
	require.Equal(t, quote.SubtotalCents, sale.SubtotalCents)
	require.Equal(t, quote.DiscountCents, sale.DiscountCents)
	require.Equal(t, quote.ShippingCents, sale.ShippingCents)
	require.Equal(t, quote.TotalCents, sale.TotalCents)

	require.Len(t, sale.Items, 1)
	item := sale.Items[0]
	require.Equal(t, createdSale.ID, item.OrderID)
	require.Equal(t, productID, item.ProductID)
	require.Equal(t, "Banner em lona", item.Name)
	require.Equal(t, int64(12000), item.PriceCents)
	require.Equal(t, &width, item.Width)
	require.Equal(t, quote.Items[0].OptionIDs, item.OptionIDs)
}

func TestConvertToSale_AlreadyConverted(t *testing.T) {
	quoteID := uuid.New()

	repo := &repository.Repository{
		Orders: &MockOrderRepo{
			GetByIDAndTypeFunc: func(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error) {
				return &models.Order{ID: quoteID, Type: models.OrderTypeQuote}, nil
			},
			FindBySourceQuoteFunc: func(ctx context.Context, qid uuid.UUID) (*models.Order, error) {
				return &models.Order{Code: "PED-2026-000050"}, nil
			},
		},
		Sequences:  &MockSequenceRepo{},
		OrderItems: &MockOrderItemRepo{},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	_, err := svc.ConvertToSale(context.Background(), quoteID, service.ConvertQuoteOptions{})
	require.ErrorIs(t, err, service.ErrAlreadyConverted)
	require.Contains(t, err.Error(), "PED-2026-000050")
}

func TestConvertToSale_QuoteNotFound(t *testing.T) {
	repo := &repository.Repository{
		Orders: &MockOrderRepo{
			GetByIDAndTypeFunc: func(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error) {
				return nil, nil
			},
		},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	_, err := svc.ConvertToSale(context.Background(), uuid.New(), service.ConvertQuoteOptions{})
	require.ErrorIs(t, err, service.ErrQuoteNotFound)
}

func TestConvertToSale_ExplicitSaleStatus(t *testing.T) {
	quoteID := uuid.New()
	status := models.OrderStatusInProgress

	var created *models.Order

	repo := &repository.Repository{
		Orders: &MockOrderRepo{
			GetByIDAndTypeFunc: func(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error) {
				return &models.Order{ID: quoteID, Type: models.OrderTypeQuote}, nil
			},
			FindBySourceQuoteFunc: func(ctx context.Context, qid uuid.UUID) (*models.Order, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, o *models.Order) error {
				o.ID = uuid.New()
				created = o
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
				return created, nil
			},
		},
		Sequences:  &MockSequenceRepo{},
		OrderItems: &MockOrderItemRepo{},
	}

	svc := service.NewQuoteService(repo, nil, zap.NewNop())

	sale, err := svc.ConvertToSale(context.Background(), quoteID, service.ConvertQuoteOptions{SaleStatus: &status})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusInProgress, sale.Status)
}
