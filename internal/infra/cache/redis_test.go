package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
)

func testResponse(id string) *entity.OptimizeResponse {
	return &entity.OptimizeResponse{
		ID:           id,
		VehicleCount: 1,
		Routes: []entity.Route{
			{
				VehicleID: 1,
				Stops: []entity.OptimizedStop{
					{
						Stop:     entity.Stop{ID: "a", Coordinate: entity.Coordinate{Lat: 1, Lng: 2}},
						Sequence: 1,
					},
				},
				Distance: 12.5,
				Time:     20,
			},
		},
		TotalDistance: 12.5,
		TotalTime:     20,
		ETA:           time.Date(2026, 3, 1, 9, 20, 0, 0, time.UTC),
	}
}

func newRedisCache(t *testing.T) (*miniredis.Miniredis, repository.ResultCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return mr, NewRedisResultCache(client, "optimize:")
}

func TestRedisResultCache_MissOnEmptyStore(t *testing.T) {
	_, c := newRedisCache(t)

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRedisResultCache_RoundTrip(t *testing.T) {
	_, c := newRedisCache(t)
	ctx := context.Background()

	stored := testResponse("res-1")
	require.NoError(t, c.Set(ctx, "key-1", stored, time.Minute))

	got, err := c.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestRedisResultCache_KeysArePrefixed(t *testing.T) {
	mr, c := newRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key-1", testResponse("res-1"), time.Minute))

	assert.True(t, mr.Exists("optimize:key-1"))
	assert.False(t, mr.Exists("key-1"))
}

func TestRedisResultCache_EntryExpires(t *testing.T) {
	mr, c := newRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key-1", testResponse("res-1"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "key-1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRedisResultCache_UnreachableStoreIsNotAMiss(t *testing.T) {
	mr, c := newRedisCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "key-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)

	err = c.Set(context.Background(), "key-1", testResponse("res-1"), time.Minute)
	assert.Error(t, err)
}
