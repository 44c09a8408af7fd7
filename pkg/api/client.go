package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fc-footy/backend/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	POST(ctx context.Context) (*Response, error)
	GET(ctx context.Context) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	baseURL string
}

func NewGenerator(baseURL string) *defaultGenerator {
	return &defaultGenerator{baseURL: baseURL}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		baseURL: g.baseURL,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

// Body is the request payload plus its content type.
type Body interface {
	ToReader() (io.Reader, string, error)
}

type defaultClient struct {
	baseURL string
	method  string
	path    string
	headers http.Header
	query   Parameter
	body    Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) POST(ctx context.Context) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx)
}

func (c *defaultClient) GET(ctx context.Context) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx)
}

func (c *defaultClient) call(ctx context.Context) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	url := c.baseURL + c.path
	if c.query != nil {
		url = url + "?" + c.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Add("Content-Type", contentType)
	}

	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	response := &Response{
		Code:   result.StatusCode,
		Header: result.Header,
	}

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, err
	}

	response.RawBody = body
	if len(body) == 0 {
		response.Body = JSON{}
	} else if b, err := bytesToJSON(body); err == nil {
		response.Body = b
	} else if b, err := bytesToArray(body); err == nil {
		response.Body = b
	}

	return response, nil
}
