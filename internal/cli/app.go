// Package cli wires the dumber-addons command-line application.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dumber-addons/internal/application/usecase"
	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/domain/build"
	"github.com/bnema/dumber-addons/internal/infrastructure/config"
	"github.com/bnema/dumber-addons/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumber-addons/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Logger        zerolog.Logger

	// Use cases
	AddonsUC *usecase.ManageAddonsUseCase

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, opens the addon database and builds the use cases.
// configFile overrides the XDG config location when non-empty.
func NewApp(configFile string, info build.Info) (*App, error) {
	mgr, err := newConfigManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     logFormat(cfg.Logging.Format),
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		BuildInfo:     info,
		Logger:        logger,
		AddonsUC:      usecase.NewManageAddonsUseCase(sqlite.NewAddonRepository(db)),
		db:            db,
		ctx:           ctx,
	}, nil
}

func newConfigManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

func logFormat(f config.LogFormat) string {
	if f == config.LogFormatJSON {
		return "json"
	}
	return "console"
}

// AppInfo returns the application identity used in dialog text.
func (a *App) AppInfo() build.AppInfo {
	return build.NewAppInfo(a.Config.App.Name, a.BuildInfo)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SchemaVersion returns the addons database schema version.
func (a *App) SchemaVersion() (int64, error) {
	return sqlite.SchemaVersion(a.ctx, a.db)
}

// Close releases all resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}
