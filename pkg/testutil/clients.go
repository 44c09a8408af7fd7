package testutil

import (
	"context"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
)

type MockGameLedger struct {
	FetchGamesFunc func(ctx context.Context, limit, offset int) ([]entity.Game, error)
}

func (m *MockGameLedger) FetchGames(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	if m.FetchGamesFunc != nil {
		return m.FetchGamesFunc(ctx, limit, offset)
	}

	return nil, nil
}

// NewMockGameLedger serves the given games as a single page.
func NewMockGameLedger(games []entity.Game) *MockGameLedger {
	return &MockGameLedger{
		FetchGamesFunc: func(ctx context.Context, limit, offset int) ([]entity.Game, error) {
			if offset >= len(games) {
				return nil, nil
			}

			end := offset + limit
			if limit <= 0 || end > len(games) {
				end = len(games)
			}

			return games[offset:end], nil
		},
	}
}

type MockIdentityResolver struct {
	ResolveByAddressesFunc func(ctx context.Context, addresses []ethutil.Address) (map[ethutil.Address]entity.Identity, error)
}

func (m *MockIdentityResolver) ResolveByAddresses(
	ctx context.Context, addresses []ethutil.Address,
) (map[ethutil.Address]entity.Identity, error) {
	if m.ResolveByAddressesFunc != nil {
		return m.ResolveByAddressesFunc(ctx, addresses)
	}

	return map[ethutil.Address]entity.Identity{}, nil
}
