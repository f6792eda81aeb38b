// Package bootstrap wires the engine to its local adapters for the binaries
package bootstrap

import (
	"fmt"

	"appcatalog/internal/adapters/labels"
	"appcatalog/internal/adapters/sqlite"
	"appcatalog/internal/application"
	"appcatalog/internal/config"
	"appcatalog/internal/logger"
)

// Runtime holds the opened database and the engine built on it
type Runtime struct {
	Engine   *application.Engine
	Registry *sqlite.Registry
	DB       *sqlite.DB
	Log      *logger.Logger
}

// Open opens the registry database named by cfg and builds the engine
func Open(cfg *config.Config, component string) (*Runtime, error) {
	logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Component: component,
	})
	log := logger.Get()

	path, err := config.ExpandPath(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}

	cmp, err := labels.NewComparator(cfg.Locale, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up label collation: %w", err)
	}

	registry := sqlite.NewRegistry(db)
	engine := application.NewEngine(registry, cmp, sqlite.NewPreferences(db), log)

	log.Debug().Str("db", path).Str("locale", cfg.Locale).Msg("runtime ready")

	return &Runtime{
		Engine:   engine,
		Registry: registry,
		DB:       db,
		Log:      log,
	}, nil
}

// Close releases the database
func (r *Runtime) Close() error {
	return r.DB.Close()
}
