package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperr "roomieflow/cli/internal/errors"
	"roomieflow/cli/internal/logging"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// RequestInterceptor runs before a request is sent. Returning an error aborts
// the request and the error is returned to the caller unchanged.
type RequestInterceptor func(req *http.Request) error

// ErrorInterceptor observes a failed call (non-2xx response or transport failure)
// and returns the error to propagate.
type ErrorInterceptor func(err error) error

// Config configures the shared client.
type Config struct {
	// BaseURL is prepended to every endpoint path (e.g., "http://localhost:5000/api").
	BaseURL string
	// Timeout bounds each request; zero means 10 seconds.
	Timeout time.Duration
	// Endpoints overrides the default endpoint paths; zero fields keep the defaults.
	Endpoints Endpoints
	// Transport overrides the round tripper (tests).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Endpoints contains REST API endpoint paths relative to BaseURL.
type Endpoints struct {
	Login    string // e.g., "/auth/login"
	Register string // e.g., "/auth/register"
	Me       string // e.g., "/auth/me"
	Refresh  string // e.g., "/auth/refresh"
	Health   string // e.g., "/health"
}

// DefaultEndpoints returns the paths served by the RoomieFlow API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:    "/auth/login",
		Register: "/auth/register",
		Me:       "/auth/me",
		Refresh:  "/auth/refresh",
		Health:   "/health",
	}
}

func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Login != "" {
		d.Login = e.Login
	}
	if e.Register != "" {
		d.Register = e.Register
	}
	if e.Me != "" {
		d.Me = e.Me
	}
	if e.Refresh != "" {
		d.Refresh = e.Refresh
	}
	if e.Health != "" {
		d.Health = e.Health
	}
	return d
}

// Client implements API over REST endpoints.
type Client struct {
	// baseURL is the base URL for all HTTP requests
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client

	before []RequestInterceptor
	after  []ErrorInterceptor
	log    *slog.Logger
}

var _ API = (*Client)(nil)

// New creates the shared client bound to sess. The default interceptors are
// installed: bearer token and request id outbound, logout-on-401 inbound.
func New(cfg Config, sess Session) *Client {
	c := NewBare(cfg)
	c.UseRequest(BearerToken(sess), RequestID())
	c.UseError(LogoutOnUnauthorized(sess, c.log))
	return c
}

// NewBare creates a client without any interceptors.
func NewBare(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		endpoints: cfg.Endpoints.withDefaults(),
		client:    &http.Client{Timeout: timeout, Transport: cfg.Transport},
		log:       log,
	}
}

// UseRequest appends outbound interceptors; they run in registration order.
func (c *Client) UseRequest(fns ...RequestInterceptor) {
	c.before = append(c.before, fns...)
}

// UseError appends inbound error interceptors; they run in registration order.
func (c *Client) UseError(fns ...ErrorInterceptor) {
	c.after = append(c.after, fns...)
}

// do sends a JSON request and decodes a 2xx JSON body into out (when non-nil).
// Non-2xx statuses become *errors.E carrying the status and the body's "error" field.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, fn := range c.before {
		if err := fn(req); err != nil {
			return err
		}
	}

	c.log.Debug("api request",
		"method", method,
		"url", req.URL.String(),
		"authorization", logging.Mask(req.Header.Get("Authorization")),
		"request_id", req.Header.Get(HeaderRequestID),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return c.reject(apperr.Wrap(apperr.Transport, method+" "+path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := responseError(resp)
		c.log.Debug("api error", "method", method, "path", path, "status", resp.StatusCode, "error", logging.Mask(rerr.Message))
		return c.reject(rerr)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.Decode, "decode "+path, err)
	}
	return nil
}

// reject passes a failure through the inbound chain.
func (c *Client) reject(err error) error {
	for _, fn := range c.after {
		err = fn(err)
	}
	return err
}

// responseError builds an error from a non-2xx response, taking the
// message from a JSON body of the form {"error": "..."} when present.
func responseError(resp *http.Response) *apperr.E {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Error any `json:"error"`
	}
	msg := ""
	if json.Unmarshal(b, &payload) == nil {
		if s, ok := payload.Error.(string); ok {
			msg = strings.TrimSpace(s)
		}
	}
	return apperr.Response(resp.StatusCode, msg)
}
