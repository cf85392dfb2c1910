package http

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -package mocks -destination mocks/mock_http_client.go github.com/kasuboski/nextup/pkg/http HTTPClient

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrMalformedResponse is wrapped by every failure to decode an upstream response body
var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned when an upstream answers with a status the caller did not accept
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status code not ok: %s", e.Status)
	}
	return fmt.Sprintf("status code not ok: %s: %s", e.Status, e.Body)
}

// HeaderClient sets a fixed group of headers on every request before handing it to the wrapped client.
// There is no retry, a failed request is returned as is.
type HeaderClient struct {
	client  HTTPClient
	headers http.Header
}

// ClientOption is a function that can be used to configure a HeaderClient
type ClientOption func(*HeaderClient)

func NewHeaderClient(opts ...ClientOption) *HeaderClient {
	c := &HeaderClient{
		client:  http.DefaultClient,
		headers: http.Header{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithHTTPClient sets the http client requests are delegated to
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *HeaderClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout bounds each request. Zero keeps the wrapped client unchanged.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HeaderClient) {
		if timeout > 0 {
			c.client = &http.Client{Timeout: timeout}
		}
	}
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) ClientOption {
	return func(c *HeaderClient) {
		c.headers.Set(key, value)
	}
}

// Do sets the configured headers that the request doesn't already carry and executes it
func (c *HeaderClient) Do(req *http.Request) (*http.Response, error) {
	for key, values := range c.headers {
		if req.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return c.client.Do(req)
}

// IsSuccess reports whether code is in the 2xx range
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// ReadResponse drains and closes the body. When accept rejects the status code a *StatusError is returned.
func ReadResponse(resp *http.Response, accept func(code int) bool) ([]byte, error) {
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !accept(resp.StatusCode) {
		return b, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(b),
		}
	}

	return b, nil
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func DecodeJSON(b []byte, v any) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func DecodeXML(b []byte, v any) error {
	if err := xml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
