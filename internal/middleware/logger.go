package middleware

import (
	"context"

	"github.com/fc-footy/backend/pkg/router"
	"github.com/fc-footy/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		r := xcontext.HTTPRequest(ctx)
		if r == nil {
			return
		}

		xcontext.Logger(ctx).Infof("%s %s", r.Method, r.URL.Path)
	}
}
