package leaderboard

import (
	"sort"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
)

// Aggregate folds game and ticket records into per-address participation
// stats. Refunded games contribute nothing. GamesParticipated counts distinct
// games only: a deployer buying tickets in their own game, or a buyer holding
// several squares of one game, counts that game once.
//
// The returned address slice is the sorted union of every address touched.
func Aggregate(games []entity.Game) ([]ethutil.Address, map[ethutil.Address]*entity.ParticipationStats) {
	stats := make(map[ethutil.Address]*entity.ParticipationStats)
	seenGames := make(map[ethutil.Address]map[string]struct{})

	touch := func(addr ethutil.Address) *entity.ParticipationStats {
		if _, ok := stats[addr]; !ok {
			stats[addr] = &entity.ParticipationStats{}
			seenGames[addr] = make(map[string]struct{})
		}

		return stats[addr]
	}

	participate := func(addr ethutil.Address, gameID string) {
		s := touch(addr)
		if _, ok := seenGames[addr][gameID]; !ok {
			seenGames[addr][gameID] = struct{}{}
			s.GamesParticipated++
		}
	}

	for _, game := range games {
		if game.Refunded {
			continue
		}

		if game.Deployer != "" {
			touch(game.Deployer).GamesDeployed++
			participate(game.Deployer, game.GameID)
		}

		for _, ticket := range game.Tickets {
			if ticket.Buyer == "" {
				continue
			}

			touch(ticket.Buyer).TicketsPurchased++
			participate(ticket.Buyer, game.GameID)
		}
	}

	addresses := make([]ethutil.Address, 0, len(stats))
	for addr := range stats {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })

	return addresses, stats
}

// Summarize computes the leaderboard totals over non-refunded games.
func Summarize(games []entity.Game, stats map[ethutil.Address]*entity.ParticipationStats) entity.LeaderboardSummary {
	summary := entity.LeaderboardSummary{}
	for _, game := range games {
		if !game.Refunded {
			summary.TotalGames++
		}
	}

	for _, s := range stats {
		summary.TotalTickets += s.TicketsPurchased
		summary.TotalDeployed += s.GamesDeployed
	}

	return summary
}
