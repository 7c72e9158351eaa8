package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"truck-loading-service/internal/adapters/repositories"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLCoordinateStore {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, repositories.InitSchema(context.Background(), conn, db.SQLite))
	return NewSQLCoordinateStore(conn, db.SQLite)
}

type countingSource struct {
	calls  atomic.Int32
	coords map[string]domain.Coordinates
}

func (s *countingSource) GetMany(_ context.Context, cities []string) (map[string]domain.Coordinates, error) {
	s.calls.Add(1)
	out := make(map[string]domain.Coordinates)
	for _, c := range cities {
		if xy, ok := s.coords[c]; ok {
			out[c] = xy
		}
	}
	return out, nil
}

func TestSQLCoordinateStorePutAndGet(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	require.NoError(t, store.PutMany(ctx, map[string]domain.Coordinates{
		"Hanoi":   {X: 21.0285, Y: 105.8542},
		"Da Nang": {X: 16.0471, Y: 108.2068},
	}))

	got, err := store.GetMany(ctx, []string{"Hanoi", "Da Nang", "Atlantis", "Hanoi", " "})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Coordinates{
		"Hanoi":   {X: 21.0285, Y: 105.8542},
		"Da Nang": {X: 16.0471, Y: 108.2068},
	}, got)

	// Upsert overwrites.
	require.NoError(t, store.PutMany(ctx, map[string]domain.Coordinates{"Hanoi": {X: 1, Y: 2}}))
	got, err = store.GetMany(ctx, []string{"Hanoi"})
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{X: 1, Y: 2}, got["Hanoi"])
}

func TestSQLCoordinateStoreEmptyInput(t *testing.T) {
	store := newSQLiteStore(t)

	got, err := store.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, store.PutMany(context.Background(), nil))
}

func TestRedisCoordinateCacheReadThrough(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	src := &countingSource{coords: map[string]domain.Coordinates{
		"Hanoi": {X: 21.0285, Y: 105.8542},
		"Dalat": {X: 11.9404, Y: 108.4583},
	}}
	c := NewRedisCoordinateCache(client, src, 0)

	got, err := c.GetMany(ctx, []string{"Hanoi", "Dalat", "Atlantis"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int32(1), src.calls.Load())
	assert.True(t, mr.Exists(defaultCoordinateKey))

	got, err = c.GetMany(ctx, []string{"Hanoi", "Dalat"})
	require.NoError(t, err)
	assert.Equal(t, src.coords, got)
	assert.Equal(t, int32(1), src.calls.Load(), "second read is served from redis")
}

func TestRedisCoordinateCacheFallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	src := &countingSource{coords: map[string]domain.Coordinates{"Hanoi": {X: 1, Y: 1}}}
	c := NewRedisCoordinateCache(client, src, 0)

	got, err := c.GetMany(ctx, []string{"Hanoi"})
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{X: 1, Y: 1}, got["Hanoi"])
}
