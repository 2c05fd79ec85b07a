package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/strcalc/internal/history"
)

type Store struct {
	storageLock sync.RWMutex
	records     []history.Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, record history.Record) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.records = append(s.records, record)
	slog.Debug("Saved history record in memory", "id", record.ID, "kind", record.Kind)
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]history.Record, error) {
	limit = history.NormalizeLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]history.Record, 0, min(limit, len(s.records)))
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() {}
