package middleware

import (
	"context"
	"strconv"

	"github.com/fc-footy/backend/pkg/router"
	"github.com/fc-footy/backend/pkg/xcontext"
)

// ImportFid reads the fid the mini app reports for the current user and puts
// it into the context. A missing or malformed header leaves the caller
// anonymous; endpoints that need a fid reject that themselves.
func ImportFid() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		r := xcontext.HTTPRequest(ctx)
		if r == nil {
			return ctx, nil
		}

		raw := r.Header.Get("X-Farcaster-Fid")
		if raw == "" {
			return ctx, nil
		}

		fid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Ignore an invalid fid header %q", raw)
			return ctx, nil
		}

		return xcontext.WithRequestFid(ctx, fid), nil
	}
}
