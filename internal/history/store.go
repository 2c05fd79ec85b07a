package history

import "context"

type Store interface {
	Save(ctx context.Context, record Record) error
	// List returns at most limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)
	Ping(ctx context.Context) error
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported history storage type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}
