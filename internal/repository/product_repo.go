package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

type ProductListFilter struct {
	Search       string
	CategorySlug string
	ActiveOnly   bool
	Limit        int
	Offset       int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlug(ctx context.Context, slug string) (*uuid.UUID, error)
	// GetForCheckout loads the products of a sale/quote with everything
	// pricing needs: option groups, options and stock.
	GetForCheckout(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	AddOptionGroup(ctx context.Context, g *models.OptionGroup) error
	GetOptionGroup(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error)
	AddOption(ctx context.Context, o *models.Option) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("OptionGroups.Options").
		Preload("Stock").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("OptionGroups.Options").
		Preload("Category").
		First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) ExistsBySlug(ctx context.Context, slug string) (*uuid.UUID, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Select("id").First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p.ID, nil
}

func (r *productRepo) GetForCheckout(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("OptionGroups.Options").
		Preload("Stock").
		Where("id IN ?", ids).
		Find(&list).Error
	return list, err
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if f.ActiveOnly {
		q = q.Where("active = true")
	}
	if f.Search != "" {
		q = q.Where("name ILIKE ?", "%"+f.Search+"%")
	}
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Product
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).
		Preload("Category").Find(&list).Error
	return list, total, err
}

func (r *productRepo) AddOptionGroup(ctx context.Context, g *models.OptionGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *productRepo) GetOptionGroup(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error) {
	var g models.OptionGroup
	err := r.db.WithContext(ctx).Preload("Options").First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &g, err
}

func (r *productRepo) AddOption(ctx context.Context, o *models.Option) error {
	return r.db.WithContext(ctx).Create(o).Error
}
