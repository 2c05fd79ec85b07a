package history

import (
	"time"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Record is one evaluated input. Sum is nil when the evaluation failed.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Input     string    `json:"input"`
	Sum       *int      `json:"sum,omitempty"`
	Error     string    `json:"error,omitempty"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

const KindOK = "ok"

func NewRecord(input string, sum int, err error) Record {
	r := Record{
		ID:        uuid.New(),
		Input:     input,
		Kind:      KindOK,
		CreatedAt: time.Now().UTC(),
	}

	if err != nil {
		r.Error = err.Error()
		r.Kind = apperr.Kind(err)
		return r
	}

	r.Sum = &sum
	return r
}

// NormalizeLimit clamps a requested page size into [1, MaxListLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
