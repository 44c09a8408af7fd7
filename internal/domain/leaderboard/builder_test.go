package leaderboard

import (
	"testing"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

func Test_Build(t *testing.T) {
	addresses := []ethutil.Address{addrA, addrB, addrC}
	stats := map[ethutil.Address]*entity.ParticipationStats{
		addrA: {TicketsPurchased: 0, GamesParticipated: 2, GamesDeployed: 2},
		addrB: {TicketsPurchased: 2, GamesParticipated: 1, GamesDeployed: 0},
		addrC: {TicketsPurchased: 1, GamesParticipated: 1, GamesDeployed: 0},
	}
	identities := map[ethutil.Address]entity.Identity{
		addrB: {RequestedAddress: addrB, Fid: 42, Username: "buyer"},
	}

	entries := Build(addresses, stats, identities)
	require.Len(t, entries, 3)

	// Points follow tickets purchased; deployment breaks no points here.
	require.Equal(t, addrB, entries[0].Address)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, int64(2), entries[0].Points)
	require.True(t, entries[0].HasIdentity)
	require.Equal(t, int64(42), entries[0].Fid)

	require.Equal(t, addrC, entries[1].Address)
	require.Equal(t, 2, entries[1].Rank)

	require.Equal(t, addrA, entries[2].Address)
	require.Equal(t, 3, entries[2].Rank)
	require.False(t, entries[2].HasIdentity)
}

func Test_Build_tieBreaks(t *testing.T) {
	addresses := []ethutil.Address{addrA, addrB, addrC, addrD}
	stats := map[ethutil.Address]*entity.ParticipationStats{
		// addrB outranks addrA on deployments, addrC outranks addrD on
		// participation, and addrC vs addrB falls through to the address.
		addrA: {TicketsPurchased: 3, GamesParticipated: 2, GamesDeployed: 0},
		addrB: {TicketsPurchased: 3, GamesParticipated: 2, GamesDeployed: 1},
		addrC: {TicketsPurchased: 3, GamesParticipated: 3, GamesDeployed: 1},
		addrD: {TicketsPurchased: 3, GamesParticipated: 2, GamesDeployed: 1},
	}

	entries := Build(addresses, stats, nil)
	require.Len(t, entries, 4)

	require.Equal(t, addrC, entries[0].Address)
	require.Equal(t, addrB, entries[1].Address)
	require.Equal(t, addrD, entries[2].Address)
	require.Equal(t, addrA, entries[3].Address)

	// Ranks stay strict even on full ties.
	for i, entry := range entries {
		require.Equal(t, i+1, entry.Rank)
	}
}

func Test_Build_deterministic(t *testing.T) {
	addresses := []ethutil.Address{addrA, addrB, addrC}
	stats := map[ethutil.Address]*entity.ParticipationStats{
		addrA: {TicketsPurchased: 1, GamesParticipated: 1},
		addrB: {TicketsPurchased: 1, GamesParticipated: 1},
		addrC: {TicketsPurchased: 1, GamesParticipated: 1},
	}

	first := Build(addresses, stats, nil)
	second := Build(addresses, stats, nil)
	require.Equal(t, first, second)
}
