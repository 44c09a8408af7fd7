package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(computedAt time.Time) *entity.Snapshot {
	return &entity.Snapshot{
		Entries: []entity.LeaderboardEntry{
			{Address: addrB, TicketsPurchased: 2, GamesParticipated: 1, Points: 2, Rank: 1},
			{Address: addrA, GamesParticipated: 1, GamesDeployed: 1, Rank: 2},
		},
		Summary:    entity.LeaderboardSummary{TotalTickets: 2, TotalGames: 1, TotalDeployed: 1},
		ComputedAt: computedAt,
	}
}

func Test_redisSnapshotCache_roundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewSnapshotCache(testutil.NewInMemoryRedisClient(), 24*time.Hour)

	computedAt := time.Now().Add(-time.Minute)
	require.NoError(t, cache.Put(ctx, sampleSnapshot(computedAt)))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleSnapshot(computedAt).Entries, got.Entries)
	require.Equal(t, sampleSnapshot(computedAt).Summary, got.Summary)
	require.Equal(t, computedAt.UnixMilli(), got.ComputedAt.UnixMilli())
}

func Test_redisSnapshotCache_emptyIsStale(t *testing.T) {
	ctx := context.Background()
	cache := NewSnapshotCache(testutil.NewInMemoryRedisClient(), 24*time.Hour)

	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)
}

func Test_redisSnapshotCache_ttlBoundary(t *testing.T) {
	ctx := context.Background()
	ttl := 24 * time.Hour

	// One second inside the window is still fresh.
	cache := NewSnapshotCache(testutil.NewInMemoryRedisClient(), ttl)
	require.NoError(t, cache.Put(ctx, sampleSnapshot(time.Now().Add(-ttl+time.Second))))
	_, err := cache.Get(ctx)
	require.NoError(t, err)

	// One second past the window is stale.
	cache = NewSnapshotCache(testutil.NewInMemoryRedisClient(), ttl)
	require.NoError(t, cache.Put(ctx, sampleSnapshot(time.Now().Add(-ttl-time.Second))))
	_, err = cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)
}

func Test_redisSnapshotCache_corruptIsStale(t *testing.T) {
	ctx := context.Background()
	redisClient := testutil.NewInMemoryRedisClient()
	cache := NewSnapshotCache(redisClient, 24*time.Hour)

	require.NoError(t, redisClient.Set(ctx, redisKeyComputedAt, "not-a-number"))
	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)

	// A readable timestamp with an unreadable payload is stale too.
	require.NoError(t, cache.Put(ctx, sampleSnapshot(time.Now())))
	require.NoError(t, redisClient.Set(ctx, redisKeySnapshot, "{broken"))
	_, err = cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)
}

func Test_redisSnapshotCache_lastIgnoresTTL(t *testing.T) {
	ctx := context.Background()
	cache := NewSnapshotCache(testutil.NewInMemoryRedisClient(), time.Hour)

	computedAt := time.Now().Add(-48 * time.Hour)
	require.NoError(t, cache.Put(ctx, sampleSnapshot(computedAt)))

	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)

	got, err := cache.Last(ctx)
	require.NoError(t, err)
	require.Equal(t, computedAt.UnixMilli(), got.ComputedAt.UnixMilli())
}

func Test_redisSnapshotCache_invalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewSnapshotCache(testutil.NewInMemoryRedisClient(), 24*time.Hour)

	require.NoError(t, cache.Put(ctx, sampleSnapshot(time.Now())))
	require.NoError(t, cache.Invalidate(ctx))

	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)
	_, err = cache.Last(ctx)
	require.ErrorIs(t, err, ErrStaleSnapshot)
}
