package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_ImportFid(t *testing.T) {
	r := httptest.NewRequest("GET", "/getLeaderboard", nil)
	r.Header.Set("X-Farcaster-Fid", "4163")

	ctx, err := ImportFid()(xcontext.WithHTTPRequest(context.Background(), r))
	require.NoError(t, err)
	require.Equal(t, int64(4163), xcontext.RequestFid(ctx))
}

func Test_ImportFid_missingOrMalformed(t *testing.T) {
	// No request at all.
	ctx, err := ImportFid()(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), xcontext.RequestFid(ctx))

	// No header.
	r := httptest.NewRequest("GET", "/getLeaderboard", nil)
	ctx, err = ImportFid()(xcontext.WithHTTPRequest(context.Background(), r))
	require.NoError(t, err)
	require.Equal(t, int64(0), xcontext.RequestFid(ctx))

	// A malformed header leaves the caller anonymous instead of failing the
	// request.
	r = httptest.NewRequest("GET", "/getLeaderboard", nil)
	r.Header.Set("X-Farcaster-Fid", "not-a-fid")
	ctx, err = ImportFid()(xcontext.WithHTTPRequest(context.Background(), r))
	require.NoError(t, err)
	require.Equal(t, int64(0), xcontext.RequestFid(ctx))
}
