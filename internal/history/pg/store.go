package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/strcalc/internal/history"
	"github.com/jackc/pgx/v5"
)

type Store struct {
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Save(ctx context.Context, record history.Record) error {
	cmd := `
        INSERT INTO calculation_history (id, input, sum, error, kind, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := s.pool.GetConn().Exec(
		ctx,
		cmd,
		record.ID,
		record.Input,
		record.Sum,
		record.Error,
		record.Kind,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]history.Record, error) {
	query := `
        SELECT id, input, sum, error, kind, created_at
        FROM calculation_history
        ORDER BY created_at DESC, id DESC
        LIMIT $1;
    `
	rows, err := s.pool.GetConn().Query(ctx, query, history.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Record, error) {
		var r history.Record
		err := row.Scan(&r.ID, &r.Input, &r.Sum, &r.Error, &r.Kind, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history rows: %w", err)
	}

	return records, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}
