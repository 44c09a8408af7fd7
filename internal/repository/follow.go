package repository

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type TeamFollowRepository interface {
	Create(ctx context.Context, follow *entity.TeamFollow) error
	Delete(ctx context.Context, teamID string, fid int64) error
	GetListByFid(ctx context.Context, fid int64) ([]entity.TeamFollow, error)
	CountByTeamID(ctx context.Context, teamID string) (int64, error)
}

type teamFollowRepository struct{}

func NewTeamFollowRepository() *teamFollowRepository {
	return &teamFollowRepository{}
}

// Create inserts the follow row, ignoring an existing one. The (team_id, fid)
// primary key makes following twice a no-op at the statement level.
func (r *teamFollowRepository) Create(ctx context.Context, follow *entity.TeamFollow) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
}

// Delete removes the row for real, so a later re-follow inserts cleanly
// instead of colliding with a soft-deleted primary key.
func (r *teamFollowRepository) Delete(ctx context.Context, teamID string, fid int64) error {
	return xcontext.DB(ctx).Unscoped().
		Where("team_id=? AND fid=?", teamID, fid).
		Delete(&entity.TeamFollow{}).Error
}

func (r *teamFollowRepository) GetListByFid(ctx context.Context, fid int64) ([]entity.TeamFollow, error) {
	var result []entity.TeamFollow
	err := xcontext.DB(ctx).Where("fid=?", fid).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *teamFollowRepository) CountByTeamID(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.TeamFollow{}).
		Where("team_id=?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
