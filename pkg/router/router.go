package router

import (
	"context"
	"net/http"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context; an
// error aborts the request with the error envelope.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, regardless of the
// handler outcome.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx context.Context
	mux *http.ServeMux

	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers inherit everything carried by ctx
// (configs, logger, database).
func New(ctx context.Context) *Router {
	return &Router{ctx: ctx, mux: http.NewServeMux()}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		mux:     r.mux,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
