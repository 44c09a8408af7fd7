package model

import "github.com/fc-footy/backend/internal/entity"

func ConvertLeaderboardEntry(e entity.LeaderboardEntry, displayMultiplier int64) LeaderboardEntry {
	label := e.Address.Short()
	if e.HasIdentity && e.Username != "" {
		label = "@" + e.Username
	}

	if displayMultiplier <= 0 {
		displayMultiplier = 1
	}

	return LeaderboardEntry{
		Address:           e.Address.String(),
		Label:             label,
		HasIdentity:       e.HasIdentity,
		Fid:               e.Fid,
		Username:          e.Username,
		DisplayName:       e.DisplayName,
		FollowerCount:     e.FollowerCount,
		FollowingCount:    e.FollowingCount,
		AvatarURL:         e.AvatarURL,
		TicketsPurchased:  e.TicketsPurchased,
		GamesParticipated: e.GamesParticipated,
		GamesDeployed:     e.GamesDeployed,
		Points:            e.Points,
		DisplayPoints:     e.Points * displayMultiplier,
		Rank:              e.Rank,
	}
}

func ConvertLeaderboardSummary(s entity.LeaderboardSummary) LeaderboardSummary {
	return LeaderboardSummary{
		TotalTickets:  s.TotalTickets,
		TotalGames:    s.TotalGames,
		TotalDeployed: s.TotalDeployed,
	}
}

func ConvertTeam(t entity.Team, followers int64) Team {
	return Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		League:       t.League,
		LogoURL:      t.LogoURL,
		Followers:    followers,
	}
}
