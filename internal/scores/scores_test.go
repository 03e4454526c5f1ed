package scores

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	best, err := s.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, best, "empty store")

	at := time.UnixMilli(1_700_000_000_000)
	runs := []Run{
		{Variant: "pads", Seed: 1, Distance: 120.5, Landings: 1, Ticks: 900, PlayedAt: at},
		{Variant: "pads", Seed: 2, Distance: 310.25, Landings: 3, Ticks: 2400, PlayedAt: at.Add(time.Minute)},
		{Variant: "classic", Seed: 3, Distance: 42, Ticks: 300, PlayedAt: at.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		require.NoError(t, s.Record(ctx, r))
	}

	best, err = s.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 310.25, best)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "classic", recent[0].Variant, "newest first")
	assert.Equal(t, int64(3), recent[0].Seed)
	assert.Equal(t, uint64(300), recent[0].Ticks)
	assert.True(t, recent[0].PlayedAt.Equal(at.Add(2*time.Minute)))
	assert.Equal(t, 3, recent[1].Landings)
	assert.Greater(t, recent[0].ID, recent[1].ID)

	all, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	exerciseStore(t, s)
	require.NoError(t, s.Close())
}

func TestMemoryRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemory()
	assert.ErrorIs(t, s.Record(ctx, Run{Distance: 1}), context.Canceled)
	_, err := s.Best(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.db")
	s, err := Open(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	// Reopening keeps the table and its rows.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	best, err := s.Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 310.25, best)
}

func TestRecordStampsTime(t *testing.T) {
	s := NewMemory()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	require.NoError(t, s.Record(context.Background(), Run{Distance: 5}))

	got, err := s.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fixed, got[0].PlayedAt)
}
