package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

type CategoryRepo interface {
	Upsert(ctx context.Context, c *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Upsert(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Raw(`
INSERT INTO categories (id, name, slug, created_at)
VALUES (gen_random_uuid(), @name, @slug, now())
ON CONFLICT (slug) DO UPDATE SET name = @name
RETURNING id
`, map[string]any{
		"name": c.Name,
		"slug": c.Slug,
	}).Scan(&c.ID).Error
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).First(&c, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}
