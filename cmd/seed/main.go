// Seeds a development database with the admin user and a few
// representative products.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/config"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/database"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/hashing"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/logger"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
)

func iptr(v int) *int         { return &v }
func i64ptr(v int64) *int64   { return &v }
func fptr(v float64) *float64 { return &v }

func main() {
	_ = godotenv.Load()
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()
	repos := repository.New(db)

	if err := seedAdmin(ctx, repos, cfg.BcryptCost, log); err != nil {
		log.Error("seed admin", zap.Error(err))
		os.Exit(1)
	}
	if err := seedCatalog(ctx, repos, log); err != nil {
		log.Error("seed catalog", zap.Error(err))
		os.Exit(1)
	}

	log.Info("seed finished")
}

func seedAdmin(ctx context.Context, repos *repository.Repository, cost int, log *zap.Logger) error {
	email := "admin@visualart.com"

	exists, err := repos.Users.ExistsByEmail(ctx, email)
	if err != nil || exists {
		return err
	}

	hash, err := hashing.NewBcrypt(cost).Hash("Admin@123")
	if err != nil {
		return err
	}

	if err := repos.Users.Create(ctx, &models.User{
		Name:     "Admin Visual Art",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Info("admin created", zap.String("email", email))
	return nil
}

func seedCatalog(ctx context.Context, repos *repository.Repository, log *zap.Logger) error {
	categories := []models.Category{
		{Name: "Banners e Lonas", Slug: "banners-e-lonas"},
		{Name: "Adesivos", Slug: "adesivos"},
		{Name: "Placas e Sinalização", Slug: "placas-e-sinalizacao"},
	}
	for i := range categories {
		if err := repos.Categories.Upsert(ctx, &categories[i]); err != nil {
			return err
		}
	}

	banners, err := repos.Categories.GetBySlug(ctx, "banners-e-lonas")
	if err != nil {
		return err
	}

	slug := "banner-lona-vinil-personalizado"
	if existing, err := repos.Products.ExistsBySlug(ctx, slug); err != nil {
		return err
	} else if existing != nil {
		return nil
	}

	p := &models.Product{
		Name:             "Banner em Lona Vinil (Personalizado)",
		Slug:             slug,
		Description:      "Banner em lona vinil com impressão de alta qualidade. Configure tamanho, acabamento e extras.",
		Active:           true,
		PricingModel:     models.PricingAreaM2,
		DimensionUnit:    models.DimensionCM,
		MinWidth:         iptr(20),
		MaxWidth:         iptr(500),
		MinHeight:        iptr(20),
		MaxHeight:        iptr(300),
		Step:             iptr(1),
		MinAreaM2:        fptr(0.25),
		MinPriceCents:    i64ptr(3500),
		BaseM2PriceCents: i64ptr(6500),
	}
	if banners != nil {
		p.CategoryID = &banners.ID
	}

	return repos.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Products.Create(ctx, p); err != nil {
			return err
		}
		if err := tx.Stocks.Upsert(ctx, p.ID, 0); err != nil {
			return err
		}

		finishing := &models.OptionGroup{
			ProductID: p.ID,
			Name:      "Acabamento",
			Required:  true,
			MinSelect: 1,
			MaxSelect: 1,
		}
		if err := tx.Products.AddOptionGroup(ctx, finishing); err != nil {
			return err
		}
		for _, o := range []models.Option{
			{GroupID: finishing.ID, Name: "Bastão e corda", Active: true, ModifierType: models.ModifierFixedCents, ModifierValue: 1500},
			{GroupID: finishing.ID, Name: "Ilhós (a cada 50cm)", Active: true, ModifierType: models.ModifierPerM2Cents, ModifierValue: 800},
		} {
			o := o
			if err := tx.Products.AddOption(ctx, &o); err != nil {
				return err
			}
		}

		extras := &models.OptionGroup{
			ProductID: p.ID,
			Name:      "Extras",
			MinSelect: 0,
			MaxSelect: 2,
			SortOrder: 1,
		}
		if err := tx.Products.AddOptionGroup(ctx, extras); err != nil {
			return err
		}
		urgent := models.Option{GroupID: extras.ID, Name: "Produção expressa", Active: true, ModifierType: models.ModifierPercent, ModifierValue: 20}
		if err := tx.Products.AddOption(ctx, &urgent); err != nil {
			return err
		}

		log.Info("product created", zap.String("slug", p.Slug))
		return nil
	})
}
