package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/strcalc/internal/history"
	"github.com/DjordjeVuckovic/strcalc/internal/history/es"
	"github.com/DjordjeVuckovic/strcalc/internal/history/pg"
	"github.com/DjordjeVuckovic/strcalc/pkg/utils"
)

type StorageConfig struct {
	history.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads HISTORY_STORAGE and the backend specific variables.
// An unset HISTORY_STORAGE selects the in-memory store.
func LoadEnv() (*StorageConfig, error) {
	storageType := history.Type(os.Getenv("HISTORY_STORAGE"))
	if storageType == "" {
		slog.Info("HISTORY_STORAGE is not set, using in-memory history")
		storageType = history.InMem
	}
	if storageType != history.ES && storageType != history.PG && storageType != history.InMem {
		slog.Error("Invalid HISTORY_STORAGE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid HISTORY_STORAGE environment variable value: %s, expected one of %v",
			storageType,
			[]history.Type{history.ES, history.PG, history.InMem})
	}

	var esCfg *es.ClientConfig
	if storageType == history.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			esCfg.IndexName = "calculation_history"
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == history.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: strings.TrimSpace(os.Getenv("PG_CONNECTION_STRING")),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
