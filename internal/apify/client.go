// Package apify is a minimal client for the platform API. It only covers the
// authenticated list call used to prove that stored credentials work.
package apify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rickgorman/apify-cli/internal/consts"
	"resty.dev/v3"
)

// ErrUnauthorized is returned when the API rejects the token.
var ErrUnauthorized = errors.New("apify: invalid or expired token")

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apify: unexpected status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// ActorList is the page returned by ListActors.
type ActorList struct {
	Total int     `json:"total"`
	Items []Actor `json:"items"`
}

// Actor is a single entry of ActorList.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type options struct {
	baseURL string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another API host (tests, proxies).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Client talks to the platform API on behalf of one user.
type Client struct {
	rc     *resty.Client
	userID string
}

// NewClient builds a client authenticated with token.
func NewClient(token, userID string, opts ...Option) *Client {
	o := options{
		baseURL: consts.DefaultAPIBaseURL,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rc := resty.New().
		SetBaseURL(o.baseURL).
		SetTimeout(o.timeout).
		SetAuthToken(token).
		SetHeader("Accept", "application/json")

	return &Client{rc: rc, userID: userID}
}

// UserID returns the user the client was created for.
func (c *Client) UserID() string {
	return c.userID
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.rc.Close()
}

// ListActors lists at most limit actors of the authenticated user.
func (c *Client) ListActors(ctx context.Context, limit int) (*ActorList, error) {
	var envelope struct {
		Data ActorList `json:"data"`
	}

	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&envelope).
		Get("/v2/acts")
	if err != nil {
		return nil, fmt.Errorf("apify: list actors: %w", err)
	}

	switch code := res.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, ErrUnauthorized
	case res.IsError() || code >= 300:
		return nil, &StatusError{Code: code, Body: res.String()}
	}

	return &envelope.Data, nil
}
