package migrate

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

type Options struct {
	CreateExtensions bool // pgcrypto для gen_random_uuid()
	CreateChecks     bool // CHECK-constraint для целостности
	CreateTrigger    bool // триггер обновления updated_at
}

func DefaultOptions() Options {
	return Options{
		CreateExtensions: true,
		CreateChecks:     true,
		CreateTrigger:    true,
	}
}

func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger, opt Options) error {
	log.Info("Начало миграции базы данных")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.OptionGroup{},
		&models.Option{},
		&models.Stock{},
		&models.Order{},
		&models.OrderItem{},
		&models.Sequence{},
	); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}

	if opt.CreateTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_products_updated ON products;
CREATE TRIGGER trg_products_updated
BEFORE UPDATE ON products
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("Не удалось создать триггер updated_at", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_type_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_type_allowed
  CHECK (type IN ('QUOTE','SALE','INTERNAL'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для orders.type", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для order_items.quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_price_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_price_non_negative
  CHECK (price_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для order_items.price_cents", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE product_option_groups
  DROP CONSTRAINT IF EXISTS chk_option_groups_select_bounds;
ALTER TABLE product_option_groups
  ADD CONSTRAINT chk_option_groups_select_bounds
  CHECK (min_select >= 0 AND max_select >= min_select);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для option groups", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE stocks
  DROP CONSTRAINT IF EXISTS chk_stocks_quantity_non_negative;
ALTER TABLE stocks
  ADD CONSTRAINT chk_stocks_quantity_non_negative
  CHECK (quantity >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для stocks.quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE sequences
  DROP CONSTRAINT IF EXISTS chk_sequences_value_non_negative;
ALTER TABLE sequences
  ADD CONSTRAINT chk_sequences_value_non_negative
  CHECK (value >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для sequences.value", zap.Error(err))
			return err
		}
	}

	log.Info("Миграция завершена")
	return nil
}
