package leaderboard

import (
	"testing"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

const (
	addrA = ethutil.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	addrB = ethutil.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	addrC = ethutil.Address("0xcccccccccccccccccccccccccccccccccccccccc")
	addrD = ethutil.Address("0xdddddddddddddddddddddddddddddddddddddddd")
)

func Test_Aggregate(t *testing.T) {
	games := []entity.Game{
		{
			GameID:   "game_a",
			Deployer: addrA,
			Tickets: []entity.Ticket{
				{Buyer: addrB, SquareIndex: 3},
				{Buyer: addrB, SquareIndex: 7},
				{Buyer: addrC, SquareIndex: 12},
			},
		},
		{
			GameID:   "game_b",
			Deployer: addrC,
			Refunded: true,
			Tickets: []entity.Ticket{
				{Buyer: addrD, SquareIndex: 1},
			},
		},
	}

	addresses, stats := Aggregate(games)

	// The refunded game contributes nothing, so addrD never appears.
	require.Equal(t, []ethutil.Address{addrA, addrB, addrC}, addresses)

	require.Equal(t, &entity.ParticipationStats{
		TicketsPurchased:  0,
		GamesParticipated: 1,
		GamesDeployed:     1,
	}, stats[addrA])

	// Two tickets in one game is still one game participated.
	require.Equal(t, &entity.ParticipationStats{
		TicketsPurchased:  2,
		GamesParticipated: 1,
		GamesDeployed:     0,
	}, stats[addrB])

	require.Equal(t, &entity.ParticipationStats{
		TicketsPurchased:  1,
		GamesParticipated: 1,
		GamesDeployed:     0,
	}, stats[addrC])
}

func Test_Aggregate_deployerBuysOwnGame(t *testing.T) {
	games := []entity.Game{
		{
			GameID:   "game_a",
			Deployer: addrA,
			Tickets: []entity.Ticket{
				{Buyer: addrA, SquareIndex: 0},
			},
		},
	}

	_, stats := Aggregate(games)

	require.Equal(t, &entity.ParticipationStats{
		TicketsPurchased:  1,
		GamesParticipated: 1,
		GamesDeployed:     1,
	}, stats[addrA])
}

func Test_Aggregate_deployerOnlyGame(t *testing.T) {
	games := []entity.Game{
		{GameID: "game_a", Deployer: addrA},
	}

	addresses, stats := Aggregate(games)

	require.Equal(t, []ethutil.Address{addrA}, addresses)
	require.Equal(t, &entity.ParticipationStats{
		TicketsPurchased:  0,
		GamesParticipated: 1,
		GamesDeployed:     1,
	}, stats[addrA])
}

func Test_Aggregate_empty(t *testing.T) {
	addresses, stats := Aggregate(nil)
	require.Empty(t, addresses)
	require.Empty(t, stats)
}

func Test_Summarize(t *testing.T) {
	games := []entity.Game{
		{
			GameID:   "game_a",
			Deployer: addrA,
			Tickets: []entity.Ticket{
				{Buyer: addrB, SquareIndex: 3},
				{Buyer: addrC, SquareIndex: 12},
			},
		},
		{GameID: "game_b", Deployer: addrB, Refunded: true},
		{GameID: "game_c", Deployer: addrA},
	}

	_, stats := Aggregate(games)
	summary := Summarize(games, stats)

	require.Equal(t, entity.LeaderboardSummary{
		TotalTickets:  2,
		TotalGames:    2,
		TotalDeployed: 2,
	}, summary)
}
