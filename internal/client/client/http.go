package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

// HTTPClient talks to the documents API over HTTP with JSON bodies.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
	timeout    time.Duration
	logger     logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource sets the function consulted before every request. A
// non-empty result is sent in the x-auth header.
func WithTokenSource(fn func() string) Option {
	return func(c *HTTPClient) { c.token = fn }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "https://test.v5.pryaniky.com/ru/data/v3/testmethods/docs".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		token:      func() string { return "" },
		logger:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var env api.Envelope[*api.LoginData]
	req := api.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, api.PathLogin, req, &env); err != nil {
		return "", err
	}

	if env.ErrorCode != api.ErrorCodeOK {
		text := env.ErrorText
		if text == "" {
			text = DefaultAuthErrorText
		}
		return "", &AuthError{Code: env.ErrorCode, Text: text}
	}

	if env.Data == nil || env.Data.Token == "" {
		return "", ErrTokenMissing
	}

	return env.Data.Token, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]api.Document, error) {
	var env api.Envelope[[]api.Document]
	if err := c.do(ctx, http.MethodGet, api.PathListDocuments, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []api.Document{}, nil
	}
	return env.Data, nil
}

func (c *HTTPClient) CreateDocument(ctx context.Context, fields api.DocumentFields) (api.Document, error) {
	var env api.Envelope[api.Document]
	if err := c.do(ctx, http.MethodPost, api.PathCreateDocument, fields, &env); err != nil {
		return api.Document{}, err
	}
	return env.Data, nil
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, id string, fields api.DocumentFields) (api.Document, error) {
	var env api.Envelope[api.Document]
	if err := c.do(ctx, http.MethodPost, api.PathUpdateDocument+url.PathEscape(id), fields, &env); err != nil {
		return api.Document{}, err
	}
	return env.Data, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id string) error {
	var env api.Envelope[json.RawMessage]
	return c.do(ctx, http.MethodPost, api.PathDeleteDocument+url.PathEscape(id), struct{}{}, &env)
}

// do sends one request and decodes the response envelope into out.
// body == nil sends no body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set(common.AuthHeaderName, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		httpErr := &HTTPError{StatusCode: resp.StatusCode}
		var env api.Envelope[json.RawMessage]
		if json.Unmarshal(raw, &env) == nil {
			httpErr.Code = env.ErrorCode
			httpErr.Text = env.ErrorText
		}
		return httpErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
