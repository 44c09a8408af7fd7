package repository

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
)

type GetListTeamFilter struct {
	League string
}

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	GetList(ctx context.Context, filter GetListTeamFilter) ([]entity.Team, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Team, error)
}

type teamRepository struct{}

func NewTeamRepository() *teamRepository {
	return &teamRepository{}
}

func (r *teamRepository) Create(ctx context.Context, team *entity.Team) error {
	return xcontext.DB(ctx).Create(team).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	var result entity.Team
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *teamRepository) GetList(ctx context.Context, filter GetListTeamFilter) ([]entity.Team, error) {
	tx := xcontext.DB(ctx).Model(&entity.Team{}).Order("name ASC")
	if filter.League != "" {
		tx = tx.Where("league=?", filter.League)
	}

	var result []entity.Team
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *teamRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Team, error) {
	var result []entity.Team
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
