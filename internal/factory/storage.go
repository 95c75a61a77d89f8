// Package factory builds storage adapters from configuration.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/config"
	"github.com/homebrain/homebrain/internal/store"
	"github.com/homebrain/homebrain/internal/store/postgres"
	"github.com/homebrain/homebrain/internal/store/sqlite"
)

// NewStore selects the storage adapter based on cfg.DBDriver. With no
// driver configured the service still starts: reads degrade to empty
// collections and writes fail with an explicit error.
func NewStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return postgres.NewWithDB(db), nil
	case "sqlite":
		st, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, nil
	case "none":
		log.Warn().Msg("no store configured; running with degraded persistence")
		return store.Unavailable(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
