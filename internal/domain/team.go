package domain

import (
	"context"
	"errors"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/internal/model"
	"github.com/fc-footy/backend/internal/repository"
	"github.com/fc-footy/backend/pkg/errorx"
	"github.com/fc-footy/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TeamDomain interface {
	GetTeams(ctx context.Context, req *model.GetTeamsRequest) (*model.GetTeamsResponse, error)
	GetFollowedTeams(ctx context.Context, req *model.GetFollowedTeamsRequest) (*model.GetFollowedTeamsResponse, error)
	FollowTeam(ctx context.Context, req *model.FollowTeamRequest) (*model.FollowTeamResponse, error)
	UnfollowTeam(ctx context.Context, req *model.UnfollowTeamRequest) (*model.UnfollowTeamResponse, error)
}

type teamDomain struct {
	teamRepo   repository.TeamRepository
	followRepo repository.TeamFollowRepository
}

func NewTeamDomain(
	teamRepo repository.TeamRepository,
	followRepo repository.TeamFollowRepository,
) *teamDomain {
	return &teamDomain{teamRepo: teamRepo, followRepo: followRepo}
}

func (d *teamDomain) GetTeams(ctx context.Context, req *model.GetTeamsRequest) (*model.GetTeamsResponse, error) {
	teams, err := d.teamRepo.GetList(ctx, repository.GetListTeamFilter{League: req.League})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get teams: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetTeamsResponse{Teams: []model.Team{}}
	for _, team := range teams {
		followers, err := d.followRepo.CountByTeamID(ctx, team.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count followers of %s: %v", team.ID, err)
			return nil, errorx.Unknown
		}

		resp.Teams = append(resp.Teams, model.ConvertTeam(team, followers))
	}

	return resp, nil
}

func (d *teamDomain) GetFollowedTeams(
	ctx context.Context, req *model.GetFollowedTeamsRequest,
) (*model.GetFollowedTeamsResponse, error) {
	fid := xcontext.RequestFid(ctx)
	if fid == 0 {
		return nil, errorx.New(errorx.BadRequest, "A fid is required")
	}

	follows, err := d.followRepo.GetListByFid(ctx, fid)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get follows of fid %d: %v", fid, err)
		return nil, errorx.Unknown
	}

	resp := &model.GetFollowedTeamsResponse{Teams: []model.Team{}}
	if len(follows) == 0 {
		return resp, nil
	}

	ids := make([]string, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.TeamID)
	}

	teams, err := d.teamRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followed teams of fid %d: %v", fid, err)
		return nil, errorx.Unknown
	}

	for _, team := range teams {
		followers, err := d.followRepo.CountByTeamID(ctx, team.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count followers of %s: %v", team.ID, err)
			return nil, errorx.Unknown
		}

		resp.Teams = append(resp.Teams, model.ConvertTeam(team, followers))
	}

	return resp, nil
}

func (d *teamDomain) FollowTeam(ctx context.Context, req *model.FollowTeamRequest) (*model.FollowTeamResponse, error) {
	fid := xcontext.RequestFid(ctx)
	if fid == 0 {
		return nil, errorx.New(errorx.BadRequest, "A fid is required")
	}

	if _, err := d.teamRepo.GetByID(ctx, req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found team %s", req.TeamID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get team %s: %v", req.TeamID, err)
		return nil, errorx.Unknown
	}

	// The repository ignores an existing follow, so following twice is a
	// no-op from the client's point of view.
	err := d.followRepo.Create(ctx, &entity.TeamFollow{TeamID: req.TeamID, Fid: fid})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot follow team %s: %v", req.TeamID, err)
		return nil, errorx.Unknown
	}

	return &model.FollowTeamResponse{}, nil
}

func (d *teamDomain) UnfollowTeam(ctx context.Context, req *model.UnfollowTeamRequest) (*model.UnfollowTeamResponse, error) {
	fid := xcontext.RequestFid(ctx)
	if fid == 0 {
		return nil, errorx.New(errorx.BadRequest, "A fid is required")
	}

	if err := d.followRepo.Delete(ctx, req.TeamID, fid); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unfollow team %s: %v", req.TeamID, err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowTeamResponse{}, nil
}
