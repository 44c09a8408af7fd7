package entity

import (
	"time"

	"github.com/fc-footy/backend/pkg/ethutil"
)

// ParticipationStats counts how an address took part in ScoreSquare games.
// Stats are recomputed from scratch on every aggregation run, never updated
// incrementally.
type ParticipationStats struct {
	TicketsPurchased  int
	GamesParticipated int
	GamesDeployed     int
}

// Identity is a Farcaster profile resolved for an address. RequestedAddress
// is the address we asked about and is the only join key downstream; the
// provider's own custody address for the same person may differ.
type Identity struct {
	RequestedAddress ethutil.Address
	Fid              int64
	Username         string
	DisplayName      string
	FollowerCount    int
	FollowingCount   int
	AvatarURL        string
	CustodyAddress   string
}

type LeaderboardEntry struct {
	Address     ethutil.Address
	HasIdentity bool

	Fid            int64
	Username       string
	DisplayName    string
	FollowerCount  int
	FollowingCount int
	AvatarURL      string

	TicketsPurchased  int
	GamesParticipated int
	GamesDeployed     int

	Points int64
	Rank   int
}

type LeaderboardSummary struct {
	TotalTickets  int
	TotalGames    int
	TotalDeployed int
}

// Snapshot is the cached result of one full pipeline run.
type Snapshot struct {
	Entries    []LeaderboardEntry
	Summary    LeaderboardSummary
	ComputedAt time.Time
}
