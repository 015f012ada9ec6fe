// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (logging, lifecycle, database) that the
// catalog systems and the storefront require.
package infrastructure

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/migrations"
	"github.com/JaimeStill/storefront/pkg/database"
	"github.com/JaimeStill/storefront/pkg/lifecycle"
	"github.com/JaimeStill/storefront/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System

	migrations  fs.FS
	autoMigrate bool
	databaseURL string
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:   lifecycle.New(),
		Logger:      logger,
		Database:    db,
		migrations:  migrations.FS,
		autoMigrate: cfg.Database.AutoMigrate,
		databaseURL: cfg.Database.URL(),
	}, nil
}

// Start applies pending migrations when auto_migrate is enabled and
// registers the database with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.autoMigrate {
		if err := database.Migrate(i.databaseURL, i.migrations, i.Logger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
