package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/fc-footy/backend/pkg/errorx"
	"github.com/fc-footy/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, r)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		if r.Method != method {
			writeJSON(ctx, w, newErrorResponse(errorx.New(errorx.BadRequest, "Not supported method %s", r.Method)))
			return
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = decodeQuery(r, &req)
		case http.MethodPost:
			err = decodeBody(r.Body, &req)
		}
		if err != nil {
			writeJSON(ctx, w, newErrorResponse(errorx.New(errorx.BadRequest, "Cannot parse the request")))
			return
		}

		for _, before := range router.befores {
			ctx, err = before(ctx)
			if err != nil {
				writeJSON(ctx, w, newErrorResponse(err))
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeJSON(ctx, w, newErrorResponse(err))
			return
		}

		writeJSON(ctx, w, newResponse(resp))
	}
}

// decodeQuery fills string, int64, int, and bool fields from url parameters
// named by their json tags.
func decodeQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return err
			}
			v.Field(i).SetInt(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return err
			}
			v.Field(i).SetBool(val)

		default:
			return fmt.Errorf("unsupported query field %s", name)
		}
	}

	return nil
}

func decodeBody(body io.Reader, req any) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if len(b) == 0 {
		return nil
	}

	return json.Unmarshal(b, req)
}
