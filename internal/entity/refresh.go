package entity

// LeaderboardRefresh is the audit row appended after every successful
// leaderboard recompute.
type LeaderboardRefresh struct {
	Base

	TotalPlayers        int
	PlayersWithIdentity int
	TotalTickets        int
	TotalGames          int
	DurationMs          int64
	Trigger             string
}
