package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type SequenceRepo interface {
	// NextCode allocates the next value of the (key, year) counter and
	// formats it as "KEY-YEAR-000001". Allocation is a single
	// increment-or-create statement, so concurrent callers inside their
	// own transactions never receive the same value; a rolled-back caller
	// leaves a gap, which is tolerated.
	NextCode(ctx context.Context, key string, year int) (string, error)
}

type sequenceRepo struct{ db *gorm.DB }

func NewSequenceRepo(db *gorm.DB) SequenceRepo { return &sequenceRepo{db: db} }

func (r *sequenceRepo) NextCode(ctx context.Context, key string, year int) (string, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
INSERT INTO sequences (id, key, year, value)
VALUES (gen_random_uuid(), @key, @year, 1)
ON CONFLICT (key, year) DO UPDATE
SET value = sequences.value + 1
RETURNING value
`, map[string]any{
		"key":  key,
		"year": year,
	}).Scan(&value).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%06d", key, year, value), nil
}
