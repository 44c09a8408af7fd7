package client

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/fc-footy/backend/config"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/api"
	"github.com/fc-footy/backend/pkg/batch"
	"github.com/fc-footy/backend/pkg/ethutil"
	"github.com/fc-footy/backend/pkg/xcontext"
)

// IdentityResolver resolves addresses to Farcaster profiles in bulk. The
// returned map is keyed by the requested address, never by the custody
// address the provider reports for the profile. Addresses with no profile are
// absent from the map.
//
// When ctx is cancelled mid-resolution the identities resolved so far are
// returned alongside the context error.
type IdentityResolver interface {
	ResolveByAddresses(ctx context.Context, addresses []ethutil.Address) (map[ethutil.Address]entity.Identity, error)
}

type farcasterClient struct {
	cfg          config.FarcasterConfigs
	apiGenerator api.Generator
}

func NewIdentityResolver(cfg config.FarcasterConfigs) *farcasterClient {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 100
	}

	// The inter-chunk delay is part of the provider's rate-limit contract, so
	// an unset config still gets the floor value.
	if cfg.ChunkDelay <= 0 {
		cfg.ChunkDelay = 100 * time.Millisecond
	}

	return &farcasterClient{
		cfg:          cfg,
		apiGenerator: api.NewGenerator(cfg.Endpoint),
	}
}

func (c *farcasterClient) ResolveByAddresses(
	ctx context.Context, addresses []ethutil.Address,
) (map[ethutil.Address]entity.Identity, error) {
	// Sorted input keeps chunk composition, and therefore provider calls,
	// identical between runs on the same address set.
	sorted := make([]ethutil.Address, len(addresses))
	copy(sorted, addresses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	identities := make(map[ethutil.Address]entity.Identity)
	err := batch.ForEachChunk(ctx, sorted, c.cfg.ChunkSize, c.cfg.ChunkDelay,
		func(ctx context.Context, chunk []ethutil.Address) error {
			c.resolveChunk(ctx, chunk, identities)
			return nil
		})

	return identities, err
}

// resolveChunk fills identities from one bulk lookup. A failed chunk resolves
// nothing but never aborts the remaining chunks.
func (c *farcasterClient) resolveChunk(
	ctx context.Context, chunk []ethutil.Address, identities map[ethutil.Address]entity.Identity,
) {
	callCtx := ctx
	if c.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()
	}

	csv := make([]string, 0, len(chunk))
	for _, addr := range chunk {
		csv = append(csv, addr.String())
	}

	resp, err := c.apiGenerator.New("/bulk-by-address").
		Header("x-api-key", c.cfg.APIKey).
		Query(api.Parameter{
			"addresses":     strings.Join(csv, ","),
			"address_types": "ethereum",
		}).
		GET(callCtx)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An identity chunk of %d addresses failed: %v", len(chunk), err)
		return
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Warnf("An identity chunk of %d addresses got status %d", len(chunk), resp.Code)
		return
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		xcontext.Logger(ctx).Warnf("Invalid identity bulk response")
		return
	}

	// The provider keys its response by the address it was asked about, not
	// by the profile's own custody address. That key is the join key all the
	// way downstream.
	for _, addr := range chunk {
		profiles, ok := body[addr.String()]
		if !ok {
			continue
		}

		rawProfiles, ok := profiles.([]any)
		if !ok || len(rawProfiles) == 0 {
			continue
		}

		profile, ok := rawProfiles[0].(map[string]any)
		if !ok {
			continue
		}

		identities[addr] = parseIdentity(addr, api.JSON(profile))
	}
}

func parseIdentity(requested ethutil.Address, profile api.JSON) entity.Identity {
	fid, _ := profile.GetInt("fid")
	username, _ := profile.GetString("username")
	displayName, _ := profile.GetString("display_name")
	followerCount, _ := profile.GetInt("follower_count")
	followingCount, _ := profile.GetInt("following_count")
	avatarURL, _ := profile.GetString("pfp_url")
	custodyAddress, _ := profile.GetString("custody_address")

	return entity.Identity{
		RequestedAddress: requested,
		Fid:              int64(fid),
		Username:         username,
		DisplayName:      displayName,
		FollowerCount:    followerCount,
		FollowingCount:   followingCount,
		AvatarURL:        avatarURL,
		CustodyAddress:   custodyAddress,
	}
}
