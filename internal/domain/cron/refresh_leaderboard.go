package cron

import (
	"context"
	"time"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
)

type LeaderboardRefresher interface {
	Refresh(ctx context.Context, trigger string) (*entity.Snapshot, error)
}

// RefreshLeaderboardCronJob recomputes the snapshot on an interval so
// readers rarely hit the stale path at all.
type RefreshLeaderboardCronJob struct {
	refresher LeaderboardRefresher
	interval  time.Duration
}

func NewRefreshLeaderboardCronJob(refresher LeaderboardRefresher, interval time.Duration) *RefreshLeaderboardCronJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &RefreshLeaderboardCronJob{refresher: refresher, interval: interval}
}

func (job *RefreshLeaderboardCronJob) Do(ctx context.Context) {
	snapshot, err := job.refresher.Refresh(ctx, "cron")
	if err != nil {
		// The last good snapshot stays in place; the next tick retries.
		xcontext.Logger(ctx).Errorf("Cannot refresh the leaderboard: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof("Refreshed the leaderboard with %d players", len(snapshot.Entries))
}

func (job *RefreshLeaderboardCronJob) RunNow() bool {
	return true
}

func (job *RefreshLeaderboardCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
