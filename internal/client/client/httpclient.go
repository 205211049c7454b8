package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/sainaif/animalsys/internal/common"
	"github.com/sainaif/animalsys/internal/logging"
	"github.com/sainaif/animalsys/internal/metrics"
)

const defaultUserAgent = "animalsys-client"

// Client is the authenticated API client. Construct it with New and share
// it between all services.
type Client struct {
	baseURL    string
	store      TokenStore
	http       *http.Client
	customHTTP bool
	timeout    time.Duration
	authStatus int
	userAgent  string
	nav        Navigator
	log        logging.Logger
	metrics    *metrics.Metrics

	refresher *refresher
}

// request is one logical call. It survives a replay; retried is set on the
// first replay and makes a second authentication failure final.
type request struct {
	id      string
	method  string
	path    string
	opts    *RequestOptions
	body    []byte
	token   string
	retried bool
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, store TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      store,
		timeout:    common.DefaultRequestTimeout,
		authStatus: http.StatusUnauthorized,
		userAgent:  defaultUserAgent,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.customHTTP {
		c.http = &http.Client{
			Transport: c.metrics.InstrumentTransport(http.DefaultTransport),
		}
	}

	c.refresher = &refresher{client: c}
	return c
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues method on path (relative to the base URL) and returns the
// response for 2xx statuses. Authentication failures are handled by the
// refresh protocol; everything else is returned as is.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
	}

	token, err := c.store.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	req := &request{
		id:     uuid.NewString(),
		method: method,
		path:   path,
		opts:   opts,
		body:   body,
		token:  token,
	}

	for {
		resp, err := c.send(ctx, req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != c.authStatus || opts.NoRefresh {
			return c.finish(resp)
		}

		if req.retried {
			c.log.Warn(ctx, "replayed request rejected",
				"request_id", req.id, "method", method, "path", path)
			return nil, &AuthExpiredError{Method: method, Path: path}
		}
		req.retried = true

		token, err := c.refresher.acquire(ctx, req.token)
		if err != nil {
			if errors.Is(err, ErrNoRefreshToken) || errors.Is(err, common.ErrNotAuthenticated) {
				return nil, &AuthExpiredError{Method: method, Path: path, Err: err}
			}
			return nil, err
		}

		c.log.Debug(ctx, "replaying request",
			"request_id", req.id, "method", method, "path", path)
		c.metrics.ObserveReplay()
		req.token = token
	}
}

func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

func (c *Client) Post(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

func (c *Client) Put(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

func (c *Client) Patch(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

type rawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// withTimeout bounds one HTTP exchange by the per-request timeout,
// whichever http.Client is in use.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) send(ctx context.Context, req *request) (*rawResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	u := c.baseURL + "/" + strings.TrimLeft(req.path, "/")
	if len(req.opts.Query) > 0 {
		u += "?" + req.opts.Query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	hr, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, &TransportError{Method: req.method, Path: req.path, Err: err}
	}

	for k, vs := range req.opts.Headers {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}
	if req.body != nil && hr.Header.Get("Content-Type") == "" {
		hr.Header.Set("Content-Type", "application/json")
	}
	if hr.Header.Get("Accept") == "" {
		hr.Header.Set("Accept", "application/json")
	}
	hr.Header.Set("User-Agent", c.userAgent)
	hr.Header.Set(common.RequestIDHeaderName, req.id)
	if req.token != "" {
		hr.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+req.token)
	}

	return c.roundTrip(hr, req.method, req.path)
}

func (c *Client) roundTrip(hr *http.Request, method, path string) (*rawResponse, error) {
	resp, err := c.http.Do(hr)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}

	return &rawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

func (c *Client) finish(resp *rawResponse) (*Response, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: resp.Body}, nil
}

// newHTTPError accepts both error body shapes the backend uses:
// {"error": "..."} and {"code": ..., "message": "..."}.
func newHTTPError(resp *rawResponse) *HTTPError {
	e := &HTTPError{StatusCode: resp.StatusCode, Body: resp.Body}

	var eb struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(resp.Body, &eb) == nil {
		e.Message = eb.Message
		if eb.Error != "" {
			e.Message = eb.Error
		}
	}
	return e
}

// requestRefresh exchanges refreshToken for a new token pair. It bypasses
// the refresh protocol: a rejected refresh is simply a failed refresh.
func (c *Client) requestRefresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+common.RefreshPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	hr.Header.Set("User-Agent", c.userAgent)
	hr.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.roundTrip(hr, http.MethodPost, common.RefreshPath)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(resp.Body, &tok); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("refresh response has no access token")
	}
	return &tok, nil
}

func encodeBody(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case io.Reader:
		// Read once so a replay can resend the same bytes.
		return io.ReadAll(b)
	default:
		return json.Marshal(v)
	}
}
