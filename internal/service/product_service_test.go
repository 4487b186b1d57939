package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

func TestProduct_Create_SlugAndStockRow(t *testing.T) {
	var (
		created      *models.Product
		stockProduct uuid.UUID
		stockQty     = -1
	)

	repo := &repository.Repository{
		Products: &MockProductRepo{
			ExistsBySlugFunc: func(ctx context.Context, slug string) (*uuid.UUID, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, p *models.Product) error {
				p.ID = uuid.New()
				created = p
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
				return created, nil
			},
		},
		Stocks: &MockStockRepo{
			UpsertFunc: func(ctx context.Context, productID uuid.UUID, quantity int) error {
				stockProduct = productID
				stockQty = quantity
				return nil
			},
		},
	}

	svc := service.NewProductService(repo, zap.NewNop())

	p, err := svc.Create(context.Background(), &models.Product{Name: "Cartão de Visita Couché"})
	require.NoError(t, err)

	require.Equal(t, "cartao-de-visita-couche", p.Slug)
	require.Equal(t, p.ID, stockProduct)
	require.Equal(t, 0, stockQty)
}

func TestProduct_Create_SlugConflict(t *testing.T) {
	existingID := uuid.New()

	repo := &repository.Repository{
		Products: &MockProductRepo{
			ExistsBySlugFunc: func(ctx context.Context, slug string) (*uuid.UUID, error) {
				return &existingID, nil
			},
		},
		Stocks: &MockStockRepo{},
	}

	svc := service.NewProductService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &models.Product{Name: "Banner"})
	require.ErrorIs(t, err, service.ErrSlugAlreadyExists)
}

func TestProduct_GetBySlug_HidesInactive(t *testing.T) {
	repo := &repository.Repository{
		Products: &MockProductRepo{
			GetBySlugFunc: func(ctx context.Context, slug string) (*models.Product, error) {
				return &models.Product{Slug: slug, Active: false}, nil
			},
		},
	}

	svc := service.NewProductService(repo, zap.NewNop())

	_, err := svc.GetBySlug(context.Background(), "descontinuado")
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestProduct_AddOptionGroup_Rules(t *testing.T) {
	productID := uuid.New()

	repo := &repository.Repository{
		Products: &MockProductRepo{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
				return &models.Product{ID: id}, nil
			},
		},
	}

	svc := service.NewProductService(repo, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name string
		in   service.CreateOptionGroupInput
		ok   bool
	}{
		{"valid optional", service.CreateOptionGroupInput{Name: "Extras", MinSelect: 0, MaxSelect: 2}, true},
		{"valid required", service.CreateOptionGroupInput{Name: "Acabamento", Required: true, MinSelect: 1, MaxSelect: 1}, true},
		{"negative min", service.CreateOptionGroupInput{MinSelect: -1, MaxSelect: 1}, false},
		{"max below min", service.CreateOptionGroupInput{MinSelect: 2, MaxSelect: 1}, false},
		{"required with zero min", service.CreateOptionGroupInput{Required: true, MinSelect: 0, MaxSelect: 1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddOptionGroup(ctx, productID, tc.in)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, service.ErrInvalidGroupRules)
			}
		})
	}
}

func TestProduct_AddOption_GroupNotFound(t *testing.T) {
	repo := &repository.Repository{
		Products: &MockProductRepo{},
	}

	svc := service.NewProductService(repo, zap.NewNop())

	_, err := svc.AddOption(context.Background(), uuid.New(), service.CreateOptionInput{Name: "Ilhós"})
	require.ErrorIs(t, err, service.ErrOptionGroupNotFound)
}

func TestProduct_UpdateStock_NotFound(t *testing.T) {
	repo := &repository.Repository{
		Products: &MockProductRepo{},
		Stocks:   &MockStockRepo{},
	}

	svc := service.NewProductService(repo, zap.NewNop())

	err := svc.UpdateStock(context.Background(), uuid.New(), 10)
	require.ErrorIs(t, err, service.ErrProductNotFound)
}
