// Package http provides the HTTP transport for the read log and
// session services: a JSON client for a remote backend and a server
// exposing the same API backed by local services.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pwalen/vitalwiki"
)

// DefaultClientTimeout is the default timeout for backend requests.
const DefaultClientTimeout = 10 * time.Second

// Ensure the client implements the service contracts at compile time.
var (
	_ vitalwiki.SessionService = (*Client)(nil)
	_ vitalwiki.ReadLog        = (*RemoteReadLog)(nil)
)

// Client talks to a remote vitalwiki backend over JSON. It implements
// vitalwiki.SessionService; ReadLog binds a session token to the
// backend's read-log endpoints.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientTimeout sets the timeout for backend requests.
func WithClientTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultClientTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// errorResponse is the backend's uniform failure payload.
type errorResponse struct {
	Error string `json:"error"`
}

// do sends a JSON request and decodes the response into out. A non-2xx
// status is mapped onto the error code vocabulary; transport failures
// surface as EUNAVAILABLE so callers can degrade to local-only mode.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return vitalwiki.Errorf(vitalwiki.EINTERNAL, "encode request: %v", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return vitalwiki.Errorf(vitalwiki.EINTERNAL, "build request: %v", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "backend unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if json.NewDecoder(resp.Body).Decode(&er) == nil && er.Error != "" {
			msg = er.Error
		}
		return vitalwiki.Errorf(codeFromStatus(resp.StatusCode), "%s", msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "decode response: %v", err)
		}
	}
	return nil
}

func codeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return vitalwiki.EINVALID
	case http.StatusUnauthorized:
		return vitalwiki.EUNAUTHORIZED
	case http.StatusNotFound:
		return vitalwiki.ENOTFOUND
	case http.StatusConflict:
		return vitalwiki.ECONFLICT
	default:
		return vitalwiki.EUNAVAILABLE
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account on the backend.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register", "", credentialsRequest{
		Username: username,
		Password: password,
	}, nil)
}

// Login verifies credentials and returns the backend's session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/login", "", credentialsRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Logout invalidates the session token on the backend.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/logout", token, nil, nil)
}

// CurrentUser resolves the username behind the session token.
func (c *Client) CurrentUser(ctx context.Context, token string) (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &out); err != nil {
		return "", err
	}
	if out.Username == "" {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "not logged in")
	}
	return out.Username, nil
}

// ReadLog returns the remote read log bound to a session token.
func (c *Client) ReadLog(token string) *RemoteReadLog {
	return &RemoteReadLog{client: c, token: token}
}

// RemoteReadLog syncs the read log with the backend under one session.
type RemoteReadLog struct {
	client *Client
	token  string
}

type readLogPayload struct {
	Log []*vitalwiki.ReadLogEntry `json:"log"`
}

// Get fetches the full log from the backend, most recent first.
func (r *RemoteReadLog) Get(ctx context.Context) ([]*vitalwiki.ReadLogEntry, error) {
	var out readLogPayload
	if err := r.client.do(ctx, http.MethodGet, "/api/read-log", r.token, nil, &out); err != nil {
		return nil, err
	}
	return out.Log, nil
}

// Set replaces the full log on the backend.
func (r *RemoteReadLog) Set(ctx context.Context, entries []*vitalwiki.ReadLogEntry) error {
	if entries == nil {
		entries = []*vitalwiki.ReadLogEntry{}
	}
	return r.client.do(ctx, http.MethodPost, "/api/read-log", r.token, readLogPayload{Log: entries}, nil)
}
