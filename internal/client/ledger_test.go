package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fc-footy/backend/config"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

func Test_subgraphClient_FetchGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string `json:"query"`
			Variables struct {
				First int `json:"first"`
				Skip  int `json:"skip"`
			} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body.Query, "refunded: false")
		require.Equal(t, 10, body.Variables.First)

		fmt.Fprint(w, `{"data": {"games": [
			{
				"gameId": "game_a",
				"eventId": "eng_1_LIV_MCI_1726327800",
				"deployer": "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
				"createdAt": "1726300000",
				"refunded": false,
				"prizeClaimed": true,
				"tickets": [
					{"buyer": "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB", "squareIndex": 3, "purchasedAt": "1726301000"}
				]
			},
			{"gameId": "game_broken", "createdAt": "not-a-number"}
		]}}`)
	}))
	defer server.Close()

	ledger := NewGameLedger(config.SubgraphConfigs{Endpoint: server.URL})
	games, err := ledger.FetchGames(context.Background(), 10, 0)
	require.NoError(t, err)

	// The invalid record is skipped, not fatal.
	require.Len(t, games, 1)
	require.Equal(t, "game_a", games[0].GameID)
	require.Equal(t, int64(1726300000), games[0].CreatedAt)
	require.True(t, games[0].PrizeClaimed)

	// Addresses are lowercased on ingestion.
	require.Equal(t, ethutil.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), games[0].Deployer)
	require.Len(t, games[0].Tickets, 1)
	require.Equal(t, ethutil.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), games[0].Tickets[0].Buyer)
	require.Equal(t, 3, games[0].Tickets[0].SquareIndex)
}

func Test_subgraphClient_FetchGames_unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	server.Close()

	ledger := NewGameLedger(config.SubgraphConfigs{Endpoint: server.URL})
	_, err := ledger.FetchGames(context.Background(), 10, 0)
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func Test_subgraphClient_FetchGames_queryRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors": [{"message": "no such field"}]}`)
	}))
	defer server.Close()

	ledger := NewGameLedger(config.SubgraphConfigs{Endpoint: server.URL})
	_, err := ledger.FetchGames(context.Background(), 10, 0)
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func Test_FetchAllGames(t *testing.T) {
	pages := [][]entity.Game{
		{{GameID: "game_a"}, {GameID: "game_b"}},
		{{GameID: "game_c"}},
	}

	var offsets []int
	ledger := &pagedLedger{
		fetch: func(ctx context.Context, limit, offset int) ([]entity.Game, error) {
			offsets = append(offsets, offset)
			if offset/limit >= len(pages) {
				return nil, nil
			}

			return pages[offset/limit], nil
		},
	}

	games, err := FetchAllGames(context.Background(), ledger, 2)
	require.NoError(t, err)
	require.Len(t, games, 3)
	require.Equal(t, []int{0, 2}, offsets)
}

func Test_fixtureLedger_deterministic(t *testing.T) {
	ledger := NewFixtureGameLedger()

	first, err := FetchAllGames(context.Background(), ledger, 100)
	require.NoError(t, err)
	second, err := FetchAllGames(context.Background(), ledger, 100)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

type pagedLedger struct {
	fetch func(ctx context.Context, limit, offset int) ([]entity.Game, error)
}

func (l *pagedLedger) FetchGames(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	return l.fetch(ctx, limit, offset)
}
