package leaderboard

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/fc-footy/backend/pkg/xredis"
)

// ErrStaleSnapshot reports that no valid snapshot exists: nothing was cached,
// the TTL elapsed, or the persisted payload could not be parsed. It is the
// caller's cue to recompute, not a failure.
var ErrStaleSnapshot = errors.New("leaderboard snapshot is stale")

// SnapshotCache persists the last computed leaderboard between pipeline runs.
// Get honors the TTL; Last ignores it, backing the serve-stale-on-error read
// path when a refresh fails.
type SnapshotCache interface {
	Get(ctx context.Context) (*entity.Snapshot, error)
	Last(ctx context.Context) (*entity.Snapshot, error)
	Put(ctx context.Context, snapshot *entity.Snapshot) error
	Invalidate(ctx context.Context) error
}

type cachedSnapshot struct {
	Entries []entity.LeaderboardEntry `json:"entries"`
	Summary entity.LeaderboardSummary `json:"summary"`
}

type redisSnapshotCache struct {
	redisClient xredis.Client
	ttl         time.Duration
}

func NewSnapshotCache(redisClient xredis.Client, ttl time.Duration) *redisSnapshotCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &redisSnapshotCache{redisClient: redisClient, ttl: ttl}
}

// Get returns ErrStaleSnapshot for every non-reusable state. A corrupt
// payload is logged and treated exactly like an expired one so the read path
// never crashes on bad persisted data.
func (c *redisSnapshotCache) Get(ctx context.Context) (*entity.Snapshot, error) {
	rawComputedAt, err := c.redisClient.Get(ctx, redisKeyComputedAt)
	if err != nil {
		return nil, ErrStaleSnapshot
	}

	computedAtMs, err := strconv.ParseInt(rawComputedAt, 10, 64)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Corrupt snapshot timestamp %q: %v", rawComputedAt, err)
		return nil, ErrStaleSnapshot
	}

	computedAt := time.UnixMilli(computedAtMs)
	if time.Since(computedAt) >= c.ttl {
		return nil, ErrStaleSnapshot
	}

	return c.read(ctx, computedAt)
}

// Last returns whatever snapshot is stored, however old. Only the total
// absence or corruption of a payload is an error here.
func (c *redisSnapshotCache) Last(ctx context.Context) (*entity.Snapshot, error) {
	rawComputedAt, err := c.redisClient.Get(ctx, redisKeyComputedAt)
	if err != nil {
		return nil, ErrStaleSnapshot
	}

	computedAtMs, err := strconv.ParseInt(rawComputedAt, 10, 64)
	if err != nil {
		return nil, ErrStaleSnapshot
	}

	return c.read(ctx, time.UnixMilli(computedAtMs))
}

func (c *redisSnapshotCache) read(ctx context.Context, computedAt time.Time) (*entity.Snapshot, error) {
	var cached cachedSnapshot
	if err := c.redisClient.GetObj(ctx, redisKeySnapshot, &cached); err != nil {
		xcontext.Logger(ctx).Warnf("Corrupt or missing snapshot payload: %v", err)
		return nil, ErrStaleSnapshot
	}

	return &entity.Snapshot{
		Entries:    cached.Entries,
		Summary:    cached.Summary,
		ComputedAt: computedAt,
	}, nil
}

func (c *redisSnapshotCache) Put(ctx context.Context, snapshot *entity.Snapshot) error {
	// The payload is stored without a redis expiry: logical staleness is
	// judged against the timestamp, while the bytes stay around to back the
	// serve-stale-on-error path.
	err := c.redisClient.SetObj(ctx, redisKeySnapshot, cachedSnapshot{
		Entries: snapshot.Entries,
		Summary: snapshot.Summary,
	}, 0)
	if err != nil {
		return err
	}

	return c.redisClient.Set(ctx, redisKeyComputedAt,
		strconv.FormatInt(snapshot.ComputedAt.UnixMilli(), 10))
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	return c.redisClient.Del(ctx, redisKeySnapshot, redisKeyComputedAt)
}
