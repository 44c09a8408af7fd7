package router

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fc-footy/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func Test_Router_GET(t *testing.T) {
	r := New(context.Background())
	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count + 1}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/echo?name=foo&count=2", nil))

	var resp struct {
		Code int64        `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(0), resp.Code)
	require.Equal(t, echoResponse{Name: "foo", Count: 3}, resp.Data)
}

func Test_Router_POST(t *testing.T) {
	r := New(context.Background())
	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/echo",
		strings.NewReader(`{"name": "foo", "count": 7}`)))

	var okResp struct {
		Code int64        `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &okResp))
	require.Equal(t, int64(0), okResp.Code)
	require.Equal(t, echoResponse{Name: "foo", Count: 7}, okResp.Data)

	// Wrong method gets the error envelope, not a 404.
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/echo", nil))

	var resp struct {
		Code  int64  `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
}

func Test_Router_errorEnvelope(t *testing.T) {
	r := New(context.Background())
	GET(r, "/known", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found thing")
	})
	GET(r, "/unknown", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, context.DeadlineExceeded
	})

	var resp struct {
		Code  int64  `json:"code"`
		Error string `json:"error"`
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/known", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(errorx.NotFound), resp.Code)
	require.Equal(t, "Not found thing", resp.Error)

	// Non-errorx errors never leak their message.
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/unknown", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)
}

func Test_Router_middleware(t *testing.T) {
	type ctxKey struct{}

	r := New(context.Background())
	r.Before(func(ctx context.Context) (context.Context, error) {
		return context.WithValue(ctx, ctxKey{}, "set"), nil
	})

	closed := false
	r.AddCloser(func(ctx context.Context) { closed = true })

	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		require.Equal(t, "set", ctx.Value(ctxKey{}))
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/echo", nil))
	require.True(t, closed)
}

func Test_Router_branchIsolation(t *testing.T) {
	r := New(context.Background())

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	})

	GET(r, "/open", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})
	GET(branch, "/guarded", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	var resp struct {
		Code int64 `json:"code"`
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(0), resp.Code)

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(errorx.PermissionDenied), resp.Code)
}
