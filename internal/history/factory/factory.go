package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/strcalc/internal/history"
	"github.com/DjordjeVuckovic/strcalc/internal/history/es"
	"github.com/DjordjeVuckovic/strcalc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/strcalc/internal/history/pg"
)

// NewStore creates a history.Store based on the storage type
func NewStore(ctx context.Context, cfg StorageConfig) (history.Store, error) {
	switch cfg.Type {
	case history.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStore(pool), nil

	case history.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		return es.NewStore(ctx, *cfg.Es)

	case history.InMem:
		return in_mem.NewStore(), nil

	default:
		return nil, fmt.Errorf(string(history.ErrUnsupportedStore), cfg.Type)
	}
}
