package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "creates parent directories",
			dbPath: filepath.Join(t.TempDir(), "nested", "dir", "history.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.dbPath)
			require.NoError(t, err)
			defer store.Close()

			assert.Equal(t, tt.dbPath, store.Path())
			n, err := store.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, n)
		})
	}
}

func TestNewStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, &Build{Args: "objective=binary"}))
	require.NoError(t, store.Close())

	store, err = NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordFillsDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := &Build{Args: "num_leaves=63", Dump: "[num_leaves: 63]\n", Objective: "regression", Boosting: "gbdt"}
	before := time.Now()
	require.NoError(t, store.Record(ctx, b))

	assert.Len(t, b.ID, 36)
	assert.Equal(t, StatusOK, b.Status)
	assert.False(t, b.CreatedAt.Before(before))

	got, err := store.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "num_leaves=63", got.Args)
	assert.Equal(t, "[num_leaves: 63]\n", got.Dump)
	assert.Equal(t, "regression", got.Objective)
	assert.Equal(t, "gbdt", got.Boosting)
	assert.Equal(t, b.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
}

func TestRecordFatalBuild(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := &Build{
		Args:         "boosting=goss bagging_fraction=0.5",
		Status:       StatusFatal,
		Warnings:     2,
		ErrorMessage: "Cannot use bagging in GOSS",
	}
	require.NoError(t, store.Record(ctx, b))

	got, err := store.Get(ctx, b.ShortID())
	require.NoError(t, err)
	assert.Equal(t, StatusFatal, got.Status)
	assert.Equal(t, 2, got.Warnings)
	assert.Equal(t, "Cannot use bagging in GOSS", got.ErrorMessage)
	assert.Empty(t, got.Dump)
}

func TestRecordDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Build{ID: "same"}))
	assert.Error(t, store.Record(ctx, &Build{ID: "same"}))
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, &Build{Args: fmt.Sprintf("seed=%d", i)}))
	}

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "seed=4", all[0].Args)
	assert.Equal(t, "seed=0", all[4].Args)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "seed=4", limited[0].Args)
	assert.Equal(t, "seed=3", limited[1].Args)
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)
	builds, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, builds)
}

func TestGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Build{ID: "abc123-one", Args: "a"}))
	require.NoError(t, store.Record(ctx, &Build{ID: "abc456-two", Args: "b"}))
	require.NoError(t, store.Record(ctx, &Build{ID: "a_c%-three", Args: "c"}))

	tests := []struct {
		name    string
		id      string
		want    string
		errIs   error
		errText string
	}{
		{name: "full id", id: "abc123-one", want: "a"},
		{name: "unique prefix", id: "abc4", want: "b"},
		{name: "wildcards are literal", id: "a_c%", want: "c"},
		{name: "ambiguous prefix", id: "abc", errText: "ambiguous"},
		{name: "unknown", id: "zzz", errIs: ErrNotFound},
		{name: "empty", id: "  ", errText: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(ctx, tt.id)
			if tt.errIs != nil || tt.errText != "" {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.True(t, errors.Is(err, tt.errIs))
				}
				if tt.errText != "" {
					assert.Contains(t, err.Error(), tt.errText)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Args)
		})
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, store.Record(ctx, &Build{Args: fmt.Sprintf("seed=%d", i)}))
	}

	removed, err := store.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	removed, err = store.Prune(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	builds, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, builds, 4)
	assert.Equal(t, "seed=5", builds[0].Args)
	assert.Equal(t, "seed=2", builds[3].Args)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Build{}))
	require.NoError(t, store.Record(ctx, &Build{}))

	removed, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", (&Build{ID: "123456789abc"}).ShortID())
	assert.Equal(t, "abc", (&Build{ID: "abc"}).ShortID())
}
