// Package apiclient is the single HTTP client shared by the storefront and admin SDKs.
// It attaches the bearer token, decodes the API envelope and performs the one-shot
// refresh-and-replay when an authenticated request comes back 401.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/session"
	"auction-marketplace/utils"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout = 30 * time.Second
	RefreshPath    = "/auth/refresh-token"

	// RequestIDHeader carries a fresh ID on every request for log correlation
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 10 << 20
)

// Request describes one API call relative to the client's base URL
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        any    // JSON-encoded when set
	Raw         []byte // sent as-is with ContentType when set
	ContentType string
	Public      bool // no bearer token and no refresh on 401
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogoutHook registers fn to run after the session has been force-cleared
func WithLogoutHook(fn func()) Option {
	return func(c *Client) { c.onLogout = fn }
}

// Client talks to the marketplace REST API
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	store    session.Store
	onLogout func()
	refresh  singleflight.Group
}

// New creates a client for baseURL (e.g. "http://localhost:8080/api")
func New(baseURL string, store session.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout, Jar: jar},
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Store returns the session store backing this client
func (c *Client) Store() session.Store {
	return c.store
}

// Get performs an authenticated GET and decodes the envelope data into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post performs an authenticated JSON POST
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put performs an authenticated JSON PUT
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Patch performs an authenticated JSON PATCH
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

// Delete performs an authenticated DELETE
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// PostMultipart sends a pre-encoded multipart body
func (c *Client) PostMultipart(ctx context.Context, path string, body []byte, contentType string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Raw: body, ContentType: contentType}, out)
}

// Do executes req. For authenticated requests a 401 triggers exactly one token
// refresh followed by exactly one replay. The local session is cleared, and
// marketerrors.ErrSessionExpired returned, only when the server rejects the refresh
// or the replay. Network failures and ctx cancellation during the refresh leave the
// session untouched.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return err
	}

	token := ""
	if !req.Public {
		snap, err := c.store.Load()
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		token = snap.AccessToken
	}

	status, payload, err := c.send(ctx, req, body, contentType, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !req.Public && token != "" {
		fresh, err := c.refreshToken(ctx, token)
		if err != nil {
			if !refreshRejected(err) {
				return fmt.Errorf("%s %s: refresh token: %w", req.Method, req.Path, err)
			}
			c.expire("refresh rejected", err)
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, marketerrors.ErrSessionExpired)
		}

		status, payload, err = c.send(ctx, req, body, contentType, fresh)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			c.expire("request rejected after refresh", nil)
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, marketerrors.ErrSessionExpired)
		}
	}

	return decode(status, payload, out)
}

// refreshRejected reports whether the server answered the refresh and refused it.
// 5xx answers are outages, not verdicts on the session.
func refreshRejected(err error) bool {
	if errors.Is(err, errNoAccessToken) {
		return true
	}
	var apiErr *marketerrors.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError
}

func (c *Client) send(ctx context.Context, req Request, body []byte, contentType, token string) (int, []byte, error) {
	u := c.resolve(req.Path, req.Query)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request %s %s: %w", req.Method, req.Path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, utils.GenerateID())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		utils.Warn("apiclient: request failed", map[string]any{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})
		return 0, nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.Path, marketerrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: read body: %w: %w", req.Method, req.Path, marketerrors.ErrNetwork, err)
	}

	utils.Debug("apiclient: response", map[string]any{
		"method": req.Method,
		"path":   req.Path,
		"status": resp.StatusCode,
	})
	return resp.StatusCode, payload, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

var errNoAccessToken = errors.New("refresh response carried no access token")

// refreshToken obtains a new access token. Concurrent callers that saw the same
// stale token share a single refresh call; callers whose token was already
// replaced by another goroutine get the stored token without a network call.
// The shared call ignores the first caller's cancellation so one caller giving up
// neither fails the others nor loses a rotated refresh token; each caller still
// stops waiting when its own ctx is done.
func (c *Client) refreshToken(ctx context.Context, stale string) (string, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.refresh.DoChan("refresh", func() (any, error) {
		snap, err := c.store.Load()
		if err != nil {
			return "", fmt.Errorf("load session: %w", err)
		}
		if snap.AccessToken != "" && snap.AccessToken != stale {
			return snap.AccessToken, nil
		}

		var body any
		if snap.RefreshToken != "" {
			body = map[string]string{"refreshToken": snap.RefreshToken}
		}
		encoded, contentType, err := encodeBody(Request{Body: body})
		if err != nil {
			return "", err
		}

		status, payload, err := c.send(shared, Request{Method: http.MethodPost, Path: RefreshPath}, encoded, contentType, "")
		if err != nil {
			return "", err
		}

		var pair tokenPair
		if err := decode(status, payload, &pair); err != nil {
			return "", err
		}
		if pair.AccessToken == "" {
			return "", errNoAccessToken
		}

		snap.AccessToken = pair.AccessToken
		if pair.RefreshToken != "" {
			snap.RefreshToken = pair.RefreshToken
		}
		if err := c.store.Save(snap); err != nil {
			return "", fmt.Errorf("save refreshed session: %w", err)
		}

		utils.Info("apiclient: access token refreshed", nil)
		return pair.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *Client) expire(reason string, cause error) {
	fields := map[string]any{"reason": reason}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	utils.Warn("apiclient: session expired, clearing local session", fields)

	if err := c.store.Clear(); err != nil {
		utils.Error("apiclient: failed to clear session", map[string]any{"error": err.Error()})
	}
	if c.onLogout != nil {
		c.onLogout()
	}
}

func encodeBody(req Request) ([]byte, string, error) {
	if req.Raw != nil {
		return req.Raw, req.ContentType, nil
	}
	if req.Body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return data, "application/json", nil
}
