package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fc-footy/backend/pkg/errorx"
	"github.com/fc-footy/backend/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

// newErrorResponse only exposes errorx errors to the client. Anything else
// collapses into Unknown so internals never leak.
func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(resp)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal the response: %v", err)
		return
	}

	if _, err := w.Write(b); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
