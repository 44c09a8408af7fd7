package domain

import (
	"context"
	"errors"
	"time"

	"github.com/fc-footy/backend/internal/client"
	"github.com/fc-footy/backend/internal/domain/leaderboard"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/internal/model"
	"github.com/fc-footy/backend/internal/repository"
	"github.com/fc-footy/backend/pkg/errorx"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type LeaderboardDomain interface {
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	RefreshLeaderboard(ctx context.Context, req *model.RefreshLeaderboardRequest) (*model.RefreshLeaderboardResponse, error)
	InvalidateLeaderboard(ctx context.Context, req *model.InvalidateLeaderboardRequest) (*model.InvalidateLeaderboardResponse, error)

	// Refresh is the non-HTTP entrypoint the cron job and the batch report
	// use.
	Refresh(ctx context.Context, trigger string) (*entity.Snapshot, error)
}

type leaderboardDomain struct {
	gameLedger       client.GameLedger
	identityResolver client.IdentityResolver
	snapshotCache    leaderboard.SnapshotCache
	refreshRepo      repository.LeaderboardRefreshRepository

	// Concurrent recompute requests coalesce into one in-flight pipeline
	// run; late arrivals wait for its result instead of fetching upstream
	// again.
	refreshGroup singleflight.Group
}

func NewLeaderboardDomain(
	gameLedger client.GameLedger,
	identityResolver client.IdentityResolver,
	snapshotCache leaderboard.SnapshotCache,
	refreshRepo repository.LeaderboardRefreshRepository,
) *leaderboardDomain {
	return &leaderboardDomain{
		gameLedger:       gameLedger,
		identityResolver: identityResolver,
		snapshotCache:    snapshotCache,
		refreshRepo:      refreshRepo,
	}
}

// GetLeaderboard serves the cached snapshot, recomputing on staleness. When
// the recompute fails the last known snapshot is served with a stale marker;
// the response is never a blank failure while any snapshot exists.
func (d *leaderboardDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	snapshot, err := d.snapshotCache.Get(ctx)
	if err != nil {
		if !errors.Is(err, leaderboard.ErrStaleSnapshot) {
			xcontext.Logger(ctx).Errorf("Cannot read the snapshot cache: %v", err)
			return nil, errorx.Unknown
		}

		snapshot, err = d.refresh(ctx, "read")
		if err != nil {
			xcontext.Logger(ctx).Warnf("Refresh failed, trying the last known snapshot: %v", err)

			snapshot, err = d.snapshotCache.Last(ctx)
			if err != nil {
				return nil, errorx.New(errorx.Unavailable, "Leaderboard is temporarily unavailable")
			}

			return d.window(ctx, snapshot, req, true), nil
		}
	}

	return d.window(ctx, snapshot, req, false), nil
}

// RefreshLeaderboard forces a recompute regardless of TTL.
func (d *leaderboardDomain) RefreshLeaderboard(
	ctx context.Context, req *model.RefreshLeaderboardRequest,
) (*model.RefreshLeaderboardResponse, error) {
	snapshot, err := d.refresh(ctx, "manual")
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh the leaderboard: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot refresh the leaderboard")
	}

	return &model.RefreshLeaderboardResponse{
		TotalPlayers: len(snapshot.Entries),
		ComputedAt:   snapshot.ComputedAt.UnixMilli(),
	}, nil
}

// InvalidateLeaderboard drops the snapshot for allow-listed fids. Any other
// caller gets the same empty success, so the response never reveals whether
// a fid is privileged.
func (d *leaderboardDomain) InvalidateLeaderboard(
	ctx context.Context, req *model.InvalidateLeaderboardRequest,
) (*model.InvalidateLeaderboardResponse, error) {
	fid := xcontext.RequestFid(ctx)
	if !xcontext.Configs(ctx).Leaderboard.IsAdmin(fid) {
		xcontext.Logger(ctx).Debugf("Ignore an invalidation attempt of fid %d", fid)
		return &model.InvalidateLeaderboardResponse{}, nil
	}

	if err := d.snapshotCache.Invalidate(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot invalidate the snapshot: %v", err)
		return nil, errorx.Unknown
	}

	return &model.InvalidateLeaderboardResponse{}, nil
}

// Refresh recomputes and caches the snapshot. It is the entrypoint the cron
// job uses.
func (d *leaderboardDomain) Refresh(ctx context.Context, trigger string) (*entity.Snapshot, error) {
	return d.refresh(ctx, trigger)
}

func (d *leaderboardDomain) refresh(ctx context.Context, trigger string) (*entity.Snapshot, error) {
	result, err, _ := d.refreshGroup.Do("leaderboard", func() (any, error) {
		return d.recompute(ctx, trigger)
	})
	if err != nil {
		return nil, err
	}

	return result.(*entity.Snapshot), nil
}

// recompute runs the sequential pipeline: fetch, aggregate, resolve, build,
// cache. Every stage depends entirely on the previous one, so there is
// nothing to overlap.
func (d *leaderboardDomain) recompute(ctx context.Context, trigger string) (*entity.Snapshot, error) {
	begin := time.Now()

	games, err := d.fetchAllGames(ctx)
	if err != nil {
		return nil, err
	}

	addresses, stats := leaderboard.Aggregate(games)

	identities, err := d.identityResolver.ResolveByAddresses(ctx, addresses)
	if err != nil {
		// Identities resolved before the cancellation are still usable.
		xcontext.Logger(ctx).Warnf("Identity resolution ended early: %v", err)
	}

	snapshot := &entity.Snapshot{
		Entries:    leaderboard.Build(addresses, stats, identities),
		Summary:    leaderboard.Summarize(games, stats),
		ComputedAt: time.Now(),
	}

	if err := d.snapshotCache.Put(ctx, snapshot); err != nil {
		return nil, err
	}

	withIdentity := 0
	for _, entry := range snapshot.Entries {
		if entry.HasIdentity {
			withIdentity++
		}
	}

	err = d.refreshRepo.Create(ctx, &entity.LeaderboardRefresh{
		Base:                entity.Base{ID: uuid.NewString()},
		TotalPlayers:        len(snapshot.Entries),
		PlayersWithIdentity: withIdentity,
		TotalTickets:        snapshot.Summary.TotalTickets,
		TotalGames:          snapshot.Summary.TotalGames,
		DurationMs:          time.Since(begin).Milliseconds(),
		Trigger:             trigger,
	})
	if err != nil {
		// The snapshot is already cached; a failed audit row is not worth a
		// failed refresh.
		xcontext.Logger(ctx).Warnf("Cannot record the refresh: %v", err)
	}

	return snapshot, nil
}

func (d *leaderboardDomain) fetchAllGames(ctx context.Context) ([]entity.Game, error) {
	return client.FetchAllGames(ctx, d.gameLedger, xcontext.Configs(ctx).Subgraph.PageSize)
}

func (d *leaderboardDomain) window(
	ctx context.Context, snapshot *entity.Snapshot, req *model.GetLeaderboardRequest, stale bool,
) *model.GetLeaderboardResponse {
	offset := req.Offset
	if offset < 0 || offset > len(snapshot.Entries) {
		offset = len(snapshot.Entries)
	}

	limit := req.Limit
	if limit <= 0 || offset+limit > len(snapshot.Entries) {
		limit = len(snapshot.Entries) - offset
	}

	multiplier := xcontext.Configs(ctx).Leaderboard.DisplayMultiplier
	players := make([]model.LeaderboardEntry, 0, limit)
	for _, entry := range snapshot.Entries[offset : offset+limit] {
		players = append(players, model.ConvertLeaderboardEntry(entry, multiplier))
	}

	return &model.GetLeaderboardResponse{
		AllPlayers: players,
		Summary:    model.ConvertLeaderboardSummary(snapshot.Summary),
		ComputedAt: snapshot.ComputedAt.UnixMilli(),
		Stale:      stale,
	}
}
