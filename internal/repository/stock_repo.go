package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

type StockRepo interface {
	Get(ctx context.Context, productID uuid.UUID) (*models.Stock, error)
	Upsert(ctx context.Context, productID uuid.UUID, quantity int) error
	// TryDecrement: if quantity >= qty then quantity -= qty, in one statement.
	// Returns false when there is not enough stock; never goes negative.
	TryDecrement(ctx context.Context, productID uuid.UUID, qty int) (bool, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepo(db *gorm.DB) StockRepo { return &stockRepo{db: db} }

func (r *stockRepo) Get(ctx context.Context, productID uuid.UUID) (*models.Stock, error) {
	var s models.Stock
	err := r.db.WithContext(ctx).First(&s, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *stockRepo) Upsert(ctx context.Context, productID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Exec(`
INSERT INTO stocks (product_id, quantity, updated_at)
VALUES (@pid, @q, now())
ON CONFLICT (product_id) DO UPDATE
SET quantity = @q, updated_at = now()
`, map[string]any{
		"pid": productID,
		"q":   quantity,
	}).Error
}

func (r *stockRepo) TryDecrement(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE stocks
SET quantity = quantity - @q,
    updated_at = now()
WHERE product_id = @pid
  AND quantity >= @q
`, map[string]any{
		"pid": productID,
		"q":   qty,
	})
	return tx.RowsAffected > 0, tx.Error
}
