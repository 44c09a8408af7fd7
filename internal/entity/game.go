package entity

import "github.com/fc-footy/backend/pkg/ethutil"

// Game is one on-chain ScoreSquare game as reported by the subgraph. It is a
// read model, not a table: the chain is the source of truth.
type Game struct {
	GameID       string
	EventID      string
	Deployer     ethutil.Address
	CreatedAt    int64
	Refunded     bool
	PrizeClaimed bool

	Tickets []Ticket
}

// Ticket is one purchased square. SquareIndex is unique within a game; one
// buyer may hold several squares of the same game.
type Ticket struct {
	Buyer       ethutil.Address
	SquareIndex int
	PurchasedAt int64
}
