package leaderboard

import (
	"sort"

	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/ethutil"
)

// Build joins participation stats with resolved identities into a totally
// ordered leaderboard. Points are the unscaled tickets-purchased count; any
// display rescaling happens in the presentation layer so ranking never
// depends on it.
//
// Sort order: points desc, games deployed desc, games participated desc,
// address asc. Ranks are 1-based and strictly increasing even on full ties,
// which makes the ordering byte-identical between runs on the same input.
func Build(
	addresses []ethutil.Address,
	stats map[ethutil.Address]*entity.ParticipationStats,
	identities map[ethutil.Address]entity.Identity,
) []entity.LeaderboardEntry {
	entries := make([]entity.LeaderboardEntry, 0, len(addresses))
	for _, addr := range addresses {
		s, ok := stats[addr]
		if !ok {
			continue
		}

		entry := entity.LeaderboardEntry{
			Address:           addr,
			TicketsPurchased:  s.TicketsPurchased,
			GamesParticipated: s.GamesParticipated,
			GamesDeployed:     s.GamesDeployed,
			Points:            int64(s.TicketsPurchased),
		}

		if identity, ok := identities[addr]; ok {
			entry.HasIdentity = true
			entry.Fid = identity.Fid
			entry.Username = identity.Username
			entry.DisplayName = identity.DisplayName
			entry.FollowerCount = identity.FollowerCount
			entry.FollowingCount = identity.FollowingCount
			entry.AvatarURL = identity.AvatarURL
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}

		if entries[i].GamesDeployed != entries[j].GamesDeployed {
			return entries[i].GamesDeployed > entries[j].GamesDeployed
		}

		if entries[i].GamesParticipated != entries[j].GamesParticipated {
			return entries[i].GamesParticipated > entries[j].GamesParticipated
		}

		return entries[i].Address < entries[j].Address
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
