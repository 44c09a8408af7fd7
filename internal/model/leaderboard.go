package model

type LeaderboardEntry struct {
	Address     string `json:"address"`
	Label       string `json:"label"`
	HasIdentity bool   `json:"hasIdentity"`

	Fid            int64  `json:"fid,omitempty"`
	Username       string `json:"username,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	FollowerCount  int    `json:"followerCount,omitempty"`
	FollowingCount int    `json:"followingCount,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`

	TicketsPurchased  int `json:"ticketsPurchased"`
	GamesParticipated int `json:"gamesParticipated"`
	GamesDeployed     int `json:"gamesDeployed"`

	Points        int64 `json:"points"`
	DisplayPoints int64 `json:"displayPoints"`
	Rank          int   `json:"rank"`
}

type LeaderboardSummary struct {
	TotalTickets  int `json:"totalTickets"`
	TotalGames    int `json:"totalGames"`
	TotalDeployed int `json:"totalDeployed"`
}

type GetLeaderboardRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetLeaderboardResponse struct {
	AllPlayers []LeaderboardEntry `json:"allPlayers"`
	Summary    LeaderboardSummary `json:"summary"`
	ComputedAt int64              `json:"computedAt"`

	// Stale marks that a refresh failed and the last known snapshot is being
	// served instead.
	Stale bool `json:"stale"`
}

type RefreshLeaderboardRequest struct{}

type RefreshLeaderboardResponse struct {
	TotalPlayers int   `json:"totalPlayers"`
	ComputedAt   int64 `json:"computedAt"`
}

type InvalidateLeaderboardRequest struct{}

type InvalidateLeaderboardResponse struct{}
