package migrate

import (
	"context"
	"fmt"

	"github.com/srmns/quotation-backend/pkg/config"
	"github.com/srmns/quotation-backend/pkg/db"
	"github.com/srmns/quotation-backend/pkg/db/models"
	"github.com/srmns/quotation-backend/pkg/logger"
)

// MaybeRunDev applies the schema automatically when the app runs in dev mode
// with the auto-migrate flag on. SQLite gets GORM AutoMigrate (goose SQL is
// written for Postgres); Postgres runs the goose migrations.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.FeatureFlags.UseSQLite {
		logg.Info(ctx, "running GORM auto-migration (sqlite dev)")
		return client.DB().WithContext(ctx).AutoMigrate(
			&models.Quotation{},
			&models.QuotationItem{},
			&models.InventoryItem{},
			&models.User{},
		)
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
