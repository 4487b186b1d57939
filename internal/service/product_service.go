package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
)

type CreateOptionGroupInput struct {
	Name      string
	Required  bool
	MinSelect int
	MaxSelect int
	SortOrder int
}

type CreateOptionInput struct {
	Name          string
	Active        bool
	ModifierType  models.ModifierType
	ModifierValue int64
}

type ProductService interface {
	ListPublic(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)

	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Product, error)
	AddOptionGroup(ctx context.Context, productID uuid.UUID, in CreateOptionGroupInput) (*models.OptionGroup, error)
	AddOption(ctx context.Context, groupID uuid.UUID, in CreateOptionInput) (*models.Option, error)
	UpdateStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{repo: repo, log: log}
}

func (s *productService) ListPublic(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	f.ActiveOnly = true
	return s.repo.Products.List(ctx, f)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.repo.Products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Slug == "" {
		p.Slug = MakeSlug(p.Name)
	} else {
		p.Slug = MakeSlug(p.Slug)
	}

	existing, err := s.repo.Products.ExistsBySlug(ctx, p.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugAlreadyExists
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Products.Create(ctx, p); err != nil {
			return err
		}
		// каждый продукт получает строку склада, чтобы остаток можно было вести сразу
		return tx.Stocks.Upsert(ctx, p.ID, 0)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product created", zap.String("slug", p.Slug))
	return s.repo.Products.GetByID(ctx, p.ID)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Product, error) {
	current, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}

	if raw, ok := fields["slug"]; ok {
		slug := MakeSlug(raw.(string))
		other, err := s.repo.Products.ExistsBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if other != nil && *other != id {
			return nil, ErrSlugAlreadyExists
		}
		fields["slug"] = slug
	}

	if err := s.repo.Products.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, id)
}

func validateGroupRules(in CreateOptionGroupInput) error {
	if in.MinSelect < 0 || in.MaxSelect < 0 {
		return ErrInvalidGroupRules
	}
	if in.MaxSelect < in.MinSelect {
		return ErrInvalidGroupRules
	}
	if in.Required && in.MinSelect == 0 {
		return ErrInvalidGroupRules
	}
	return nil
}

func (s *productService) AddOptionGroup(ctx context.Context, productID uuid.UUID, in CreateOptionGroupInput) (*models.OptionGroup, error) {
	p, err := s.repo.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if err := validateGroupRules(in); err != nil {
		return nil, err
	}

	g := &models.OptionGroup{
		ProductID: productID,
		Name:      in.Name,
		Required:  in.Required,
		MinSelect: in.MinSelect,
		MaxSelect: in.MaxSelect,
		SortOrder: in.SortOrder,
	}
	if err := s.repo.Products.AddOptionGroup(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *productService) AddOption(ctx context.Context, groupID uuid.UUID, in CreateOptionInput) (*models.Option, error) {
	g, err := s.repo.Products.GetOptionGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrOptionGroupNotFound
	}

	o := &models.Option{
		GroupID:       groupID,
		Name:          in.Name,
		Active:        in.Active,
		ModifierType:  in.ModifierType,
		ModifierValue: in.ModifierValue,
	}
	if err := s.repo.Products.AddOption(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *productService) UpdateStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	p, err := s.repo.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.repo.Stocks.Upsert(ctx, productID, quantity)
}
