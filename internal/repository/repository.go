package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository bundles all repos over one gorm handle. WithTx yields a
// Repository bound to the transaction so every write inside the callback
// commits or rolls back together; nothing relies on ambient tx state.
type Repository struct {
	DB         *gorm.DB
	Users      UserRepo
	Categories CategoryRepo
	Products   ProductRepo
	Stocks     StockRepo
	Sequences  SequenceRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Users:      NewUserRepo(db),
		Categories: NewCategoryRepo(db),
		Products:   NewProductRepo(db),
		Stocks:     NewStockRepo(db),
		Sequences:  NewSequenceRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.DB == nil {
		// repos were assembled by hand (tests); nothing to begin
		return fn(r)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
