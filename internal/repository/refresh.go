package repository

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
)

type LeaderboardRefreshRepository interface {
	Create(ctx context.Context, refresh *entity.LeaderboardRefresh) error
	Latest(ctx context.Context) (*entity.LeaderboardRefresh, error)
}

type leaderboardRefreshRepository struct{}

func NewLeaderboardRefreshRepository() *leaderboardRefreshRepository {
	return &leaderboardRefreshRepository{}
}

func (r *leaderboardRefreshRepository) Create(ctx context.Context, refresh *entity.LeaderboardRefresh) error {
	return xcontext.DB(ctx).Create(refresh).Error
}

func (r *leaderboardRefreshRepository) Latest(ctx context.Context) (*entity.LeaderboardRefresh, error) {
	var result entity.LeaderboardRefresh
	err := xcontext.DB(ctx).Order("created_at DESC").Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
