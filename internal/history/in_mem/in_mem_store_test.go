package in_mem

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/strcalc/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, history.NewRecord(strconv.Itoa(i), i, nil)))
	}

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Input)
	assert.Equal(t, "1", got[1].Input)
	assert.Equal(t, "0", got[2].Input)
}

func TestStore_ListLimit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for i := 0; i < history.MaxListLimit+5; i++ {
		require.NoError(t, s.Save(ctx, history.NewRecord("1", 1, nil)))
	}

	got, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, history.DefaultListLimit)

	got, err = s.List(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, got, history.MaxListLimit)
}

func TestStore_Empty(t *testing.T) {
	got, err := NewStore().List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Ping(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}

func TestStore_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, history.NewRecord("1", 1, nil)))
		}()
	}
	wg.Wait()

	got, err := s.List(ctx, history.MaxListLimit)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
