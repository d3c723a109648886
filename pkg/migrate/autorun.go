package migrate

import (
	"context"
	"fmt"

	"github.com/drivecans/storefront-backend/pkg/config"
	"github.com/drivecans/storefront-backend/pkg/db"
	"github.com/drivecans/storefront-backend/pkg/db/models"
	"github.com/drivecans/storefront-backend/pkg/logger"
)

// MaybeRunDev brings the schema up automatically when the app runs in dev
// mode with the feature flag enabled. The sqlite path uses GORM's
// auto-migration (the embedded file has no migration history to manage);
// postgres goes through goose.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	meta := map[string]any{"env": cfg.App.Env, "driver": cfg.DB.Driver}
	ctx = logg.WithFields(ctx, meta)

	if cfg.DB.IsSQLite() {
		logg.Info(ctx, "auto-migrating sqlite schema")
		if err := AutoMigrate(client); err != nil {
			return fmt.Errorf("sqlite auto-migrate: %w", err)
		}
		logg.Info(ctx, "sqlite schema up to date")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running Goose migrations (dev auto-run)")
	if err := Run(ctx, sqlDB, cfg.DB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "Goose migrations completed")
	return nil
}

// AutoMigrate creates or updates the full storefront schema via GORM.
func AutoMigrate(client *db.Client) error {
	return client.DB().AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.AuthSession{},
		&models.Cart{},
		&models.CartItem{},
	)
}
