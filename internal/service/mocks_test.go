package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
)

// Func-field mocks for every repo the workflows touch.

type MockProductRepo struct {
	GetForCheckoutFunc func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlugFunc   func(ctx context.Context, slug string) (*uuid.UUID, error)
	CreateFunc         func(ctx context.Context, p *models.Product) error
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProductRepo) ExistsBySlug(ctx context.Context, slug string) (*uuid.UUID, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProductRepo) GetForCheckout(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.GetForCheckoutFunc != nil {
		return m.GetForCheckoutFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (m *MockProductRepo) AddOptionGroup(ctx context.Context, g *models.OptionGroup) error { return nil }

func (m *MockProductRepo) GetOptionGroup(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error) {
	return nil, nil
}

func (m *MockProductRepo) AddOption(ctx context.Context, o *models.Option) error { return nil }

type MockStockRepo struct {
	GetFunc          func(ctx context.Context, productID uuid.UUID) (*models.Stock, error)
	UpsertFunc       func(ctx context.Context, productID uuid.UUID, quantity int) error
	TryDecrementFunc func(ctx context.Context, productID uuid.UUID, qty int) (bool, error)
}

func (m *MockStockRepo) Get(ctx context.Context, productID uuid.UUID) (*models.Stock, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockStockRepo) Upsert(ctx context.Context, productID uuid.UUID, quantity int) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, productID, quantity)
	}
	return nil
}

func (m *MockStockRepo) TryDecrement(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	if m.TryDecrementFunc != nil {
		return m.TryDecrementFunc(ctx, productID, qty)
	}
	return true, nil
}

type MockSequenceRepo struct {
	NextCodeFunc func(ctx context.Context, key string, year int) (string, error)
}

func (m *MockSequenceRepo) NextCode(ctx context.Context, key string, year int) (string, error) {
	if m.NextCodeFunc != nil {
		return m.NextCodeFunc(ctx, key, year)
	}
	return key + "-2025-000001", nil
}

type MockOrderRepo struct {
	CreateFunc            func(ctx context.Context, o *models.Order) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForUserFunc    func(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	GetByIDAndTypeFunc    func(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error)
	FindBySourceQuoteFunc func(ctx context.Context, quoteID uuid.UUID) (*models.Order, error)
	ListFunc              func(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDAndType(ctx context.Context, id uuid.UUID, typ models.OrderType) (*models.Order, error) {
	if m.GetByIDAndTypeFunc != nil {
		return m.GetByIDAndTypeFunc(ctx, id, typ)
	}
	return nil, nil
}

func (m *MockOrderRepo) FindBySourceQuote(ctx context.Context, quoteID uuid.UUID) (*models.Order, error) {
	if m.FindBySourceQuoteFunc != nil {
		return m.FindBySourceQuoteFunc(ctx, quoteID)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	return nil
}

func (m *MockOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

type MockOrderItemRepo struct {
	BulkCreateFunc func(ctx context.Context, items []models.OrderItem) error
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	return nil, nil
}

type MockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *models.User) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}
