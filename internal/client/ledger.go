package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fc-footy/backend/config"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/api"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/fc-footy/backend/pkg/xcontext"
)

// ErrSourceUnavailable reports that the subgraph endpoint is unreachable or
// has been removed. Production callers must surface it as a failed refresh;
// only explicitly-marked dev paths may substitute the fixture ledger.
var ErrSourceUnavailable = errors.New("game ledger is unavailable")

const gamesQuery = `query Games($first: Int!, $skip: Int!) {
  games(
    first: $first
    skip: $skip
    orderBy: createdAt
    orderDirection: desc
    where: { refunded: false, squarePrice_gt: 0 }
  ) {
    id
    gameId
    eventId
    deployer
    createdAt
    refunded
    prizeClaimed
    tickets {
      buyer
      squareIndex
      purchasedAt
    }
  }
}`

// GameLedger reads on-chain game and ticket history from the indexer.
type GameLedger interface {
	FetchGames(ctx context.Context, limit, offset int) ([]entity.Game, error)
}

// FetchAllGames pages through the ledger until a short page signals the end.
func FetchAllGames(ctx context.Context, ledger GameLedger, pageSize int) ([]entity.Game, error) {
	if pageSize <= 0 {
		pageSize = 1000
	}

	var games []entity.Game
	for offset := 0; ; offset += pageSize {
		page, err := ledger.FetchGames(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}

		games = append(games, page...)
		if len(page) < pageSize {
			return games, nil
		}
	}
}

type subgraphClient struct {
	cfg          config.SubgraphConfigs
	apiGenerator api.Generator
}

func NewGameLedger(cfg config.SubgraphConfigs) *subgraphClient {
	return &subgraphClient{
		cfg:          cfg,
		apiGenerator: api.NewGenerator(cfg.Endpoint),
	}
}

func (c *subgraphClient) FetchGames(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	callCtx := ctx
	if c.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()
	}

	resp, err := c.apiGenerator.New("").
		Body(api.JSON{
			"query": gamesQuery,
			"variables": api.JSON{
				"first": limit,
				"skip":  offset,
			},
		}).
		POST(callCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.Code)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("%w: non-object response", ErrSourceUnavailable)
	}

	if errs, err := body.GetArray("errors"); err == nil && len(errs) > 0 {
		return nil, fmt.Errorf("%w: query rejected", ErrSourceUnavailable)
	}

	data, err := body.GetJSON("data")
	if err != nil || data == nil {
		return nil, fmt.Errorf("%w: no data in response", ErrSourceUnavailable)
	}

	rawGames, err := data.GetArray("games")
	if err != nil {
		return nil, fmt.Errorf("%w: no games in response", ErrSourceUnavailable)
	}

	games := make([]entity.Game, 0, len(rawGames))
	for _, rawGame := range rawGames {
		obj, ok := rawGame.(map[string]any)
		if !ok {
			xcontext.Logger(ctx).Warnf("Ignore a non-object game record")
			continue
		}

		game, err := parseGame(api.JSON(obj))
		if err != nil {
			xcontext.Logger(ctx).Warnf("Ignore an invalid game record: %v", err)
			continue
		}

		games = append(games, game)
	}

	return games, nil
}

func parseGame(obj api.JSON) (entity.Game, error) {
	gameID, err := obj.GetString("gameId")
	if err != nil || gameID == "" {
		if gameID, err = obj.GetString("id"); err != nil {
			return entity.Game{}, err
		}
	}

	eventID, _ := obj.GetString("eventId")
	refunded, _ := obj.GetBool("refunded")
	prizeClaimed, _ := obj.GetBool("prizeClaimed")

	createdAt, err := toInt64(obj["createdAt"])
	if err != nil {
		return entity.Game{}, fmt.Errorf("invalid createdAt of game %s: %v", gameID, err)
	}

	game := entity.Game{
		GameID:       gameID,
		EventID:      eventID,
		CreatedAt:    createdAt,
		Refunded:     refunded,
		PrizeClaimed: prizeClaimed,
	}

	// Addresses are normalized at the ingestion boundary. A game with an
	// unparsable deployer still counts its tickets.
	if rawDeployer, err := obj.GetString("deployer"); err == nil && rawDeployer != "" {
		if deployer, err := ethutil.NewAddress(rawDeployer); err == nil {
			game.Deployer = deployer
		}
	}

	rawTickets, err := obj.GetArray("tickets")
	if err != nil {
		return game, nil
	}

	for _, rawTicket := range rawTickets {
		tobj, ok := rawTicket.(map[string]any)
		if !ok {
			continue
		}

		ticket, err := parseTicket(api.JSON(tobj))
		if err != nil {
			continue
		}

		game.Tickets = append(game.Tickets, ticket)
	}

	return game, nil
}

func parseTicket(obj api.JSON) (entity.Ticket, error) {
	rawBuyer, err := obj.GetString("buyer")
	if err != nil {
		return entity.Ticket{}, err
	}

	buyer, err := ethutil.NewAddress(rawBuyer)
	if err != nil {
		return entity.Ticket{}, err
	}

	squareIndex, err := toInt64(obj["squareIndex"])
	if err != nil {
		return entity.Ticket{}, err
	}

	purchasedAt, _ := toInt64(obj["purchasedAt"])

	return entity.Ticket{
		Buyer:       buyer,
		SquareIndex: int(squareIndex),
		PurchasedAt: purchasedAt,
	}, nil
}

// toInt64 accepts the two numeric encodings subgraphs emit: JSON numbers and
// decimal strings for BigInt fields.
func toInt64(value any) (int64, error) {
	switch t := value.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	}

	return 0, fmt.Errorf("invalid numeric value %v (%T)", value, value)
}
