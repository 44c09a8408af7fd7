package client

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/xcontext"
)

// fixtureLedger is the documented development fallback for when the subgraph
// is unreachable: a small deterministic game set, identical on every call.
// It exists for local development and tests only and must never back a
// production serving path, which has to surface ErrSourceUnavailable
// instead.
type fixtureLedger struct{}

func NewFixtureGameLedger() *fixtureLedger {
	return &fixtureLedger{}
}

func (l *fixtureLedger) FetchGames(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	xcontext.Logger(ctx).Warnf("Serving fixture games instead of the ledger")

	games := []entity.Game{
		{
			GameID:    "fixture_epl_1",
			EventID:   "eng_1_LIV_MCI_1726327800",
			Deployer:  "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			CreatedAt: 1726300000,
			Tickets: []entity.Ticket{
				{Buyer: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", SquareIndex: 3, PurchasedAt: 1726301000},
				{Buyer: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", SquareIndex: 7, PurchasedAt: 1726301060},
				{Buyer: "0xcccccccccccccccccccccccccccccccccccccccc", SquareIndex: 12, PurchasedAt: 1726302000},
			},
		},
		{
			GameID:    "fixture_ucl_1",
			EventID:   "uefa_RMA_BAR_1726414200",
			Deployer:  "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			CreatedAt: 1726200000,
			Tickets: []entity.Ticket{
				{Buyer: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", SquareIndex: 0, PurchasedAt: 1726201000},
			},
		},
		{
			GameID:    "fixture_epl_2",
			EventID:   "eng_1_ARS_CHE_1726500600",
			Deployer:  "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			CreatedAt: 1726100000,
		},
	}

	if offset >= len(games) {
		return nil, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(games) {
		end = len(games)
	}

	return games[offset:end], nil
}
