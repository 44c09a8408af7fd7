package testutil

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/fc-footy/backend/pkg/xcontext"
)

var (
	Deployer = ethutil.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	Buyer1   = ethutil.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	Buyer2   = ethutil.Address("0xcccccccccccccccccccccccccccccccccccccccc")

	// SampleGames covers the interesting aggregation shapes: a game with a
	// repeat buyer, a refunded game that must contribute nothing, and a
	// deployer-only game with zero tickets.
	SampleGames = []entity.Game{
		{
			GameID:    "game_a",
			EventID:   "eng_1_LIV_MCI_1726327800",
			Deployer:  Deployer,
			CreatedAt: 1726300000,
			Tickets: []entity.Ticket{
				{Buyer: Buyer1, SquareIndex: 3, PurchasedAt: 1726301000},
				{Buyer: Buyer1, SquareIndex: 7, PurchasedAt: 1726301060},
				{Buyer: Buyer2, SquareIndex: 12, PurchasedAt: 1726302000},
			},
		},
		{
			GameID:    "game_b",
			EventID:   "eng_1_ARS_CHE_1726500600",
			Deployer:  Buyer2,
			CreatedAt: 1726200000,
			Refunded:  true,
			Tickets: []entity.Ticket{
				{Buyer: Buyer1, SquareIndex: 1, PurchasedAt: 1726201000},
			},
		},
		{
			GameID:    "game_c",
			EventID:   "uefa_RMA_BAR_1726414200",
			Deployer:  Deployer,
			CreatedAt: 1726100000,
		},
	}

	SampleTeam1 = entity.Team{
		Base:         entity.Base{ID: "team1"},
		Name:         "Liverpool",
		Abbreviation: "LIV",
		League:       "eng.1",
		LogoURL:      "https://a.espncdn.com/i/teamlogos/soccer/500/364.png",
	}

	SampleTeam2 = entity.Team{
		Base:         entity.Base{ID: "team2"},
		Name:         "Real Madrid",
		Abbreviation: "RMA",
		League:       "uefa.champions",
		LogoURL:      "https://a.espncdn.com/i/teamlogos/soccer/500/86.png",
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertTeams(ctx)
}

func insertTeams(ctx context.Context) {
	teams := []entity.Team{SampleTeam1, SampleTeam2}
	for i := range teams {
		if err := xcontext.DB(ctx).Create(&teams[i]).Error; err != nil {
			panic(err)
		}
	}
}
