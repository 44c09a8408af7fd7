package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fc-footy/backend/internal/client"
	"github.com/fc-footy/backend/internal/domain/leaderboard"
	"github.com/fc-footy/backend/internal/model"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type reportStats struct {
	TicketsPurchased  int `json:"ticketsPurchased"`
	GamesParticipated int `json:"gamesParticipated"`
	GamesDeployed     int `json:"gamesDeployed"`
}

type reportArtifact struct {
	Timestamp              string                   `json:"timestamp"`
	TotalPlayers           int                      `json:"totalPlayers"`
	PlayersWithIdentity    int                      `json:"playersWithIdentity"`
	PlayersWithoutIdentity int                      `json:"playersWithoutIdentity"`
	AllPlayers             []model.LeaderboardEntry `json:"allPlayers"`
	ParticipationStats     map[string]reportStats   `json:"participationStats"`
	Summary                model.LeaderboardSummary `json:"summary"`
}

// startReport runs the pipeline once without touching the database or the
// cache, prints the ranked leaderboard and writes a JSON artifact next to it.
func (s *srv) startReport(ct *cli.Context) error {
	s.ctx = context.Background()
	s.loadConfig()
	s.loadLogger()
	s.loadClients()

	if ct.Bool("fixture") {
		s.gameLedger = client.NewFixtureGameLedger()
	}

	cfg := xcontext.Configs(s.ctx)
	games, err := client.FetchAllGames(s.ctx, s.gameLedger, cfg.Subgraph.PageSize)
	if err != nil {
		return err
	}

	addresses, stats := leaderboard.Aggregate(games)

	identities, err := s.identityResolver.ResolveByAddresses(s.ctx, addresses)
	if err != nil {
		xcontext.Logger(s.ctx).Warnf("Identity resolution ended early: %v", err)
	}

	entries := leaderboard.Build(addresses, stats, identities)
	summary := leaderboard.Summarize(games, stats)

	withIdentity := 0
	multiplier := cfg.Leaderboard.DisplayMultiplier
	players := make([]model.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.HasIdentity {
			withIdentity++
		}

		players = append(players, model.ConvertLeaderboardEntry(entry, multiplier))
	}

	fmt.Printf("Players: %d (%d with identity)\n", len(entries), withIdentity)
	fmt.Printf("Tickets: %d, games: %d, deployed: %d\n\n",
		summary.TotalTickets, summary.TotalGames, summary.TotalDeployed)
	for _, player := range players {
		fmt.Printf("%4d. %-24s %6d points %3d tickets %3d games %3d deployed\n",
			player.Rank, player.Label, player.Points,
			player.TicketsPurchased, player.GamesParticipated, player.GamesDeployed)
	}

	participation := make(map[string]reportStats, len(stats))
	for addr, s := range stats {
		participation[addr.String()] = reportStats{
			TicketsPurchased:  s.TicketsPurchased,
			GamesParticipated: s.GamesParticipated,
			GamesDeployed:     s.GamesDeployed,
		}
	}

	now := time.Now()
	artifact := reportArtifact{
		Timestamp:              now.Format(time.RFC3339),
		TotalPlayers:           len(entries),
		PlayersWithIdentity:    withIdentity,
		PlayersWithoutIdentity: len(entries) - withIdentity,
		AllPlayers:             players,
		ParticipationStats:     participation,
		Summary:                model.ConvertLeaderboardSummary(summary),
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(ct.String("out"),
		fmt.Sprintf("leaderboard-report-%s.json", now.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Wrote the report to %s", path)
	return nil
}
