// Package ingest fetches sweep and expiring-market data from the source
// service and drives the poll cycle.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sweepwatch/engine/internal/store"
)

// ErrSourceUnavailable wraps any fetch or decode failure. A tick that
// hits it is abandoned wholesale; the previous working set stays in
// memory untouched.
var ErrSourceUnavailable = errors.New("data source unavailable")

const defaultHTTPTimeout = 10 * time.Second

// sweepsEnvelope matches GET <source>/sweeps.
type sweepsEnvelope struct {
	Data []store.Sweep `json:"data"`
}

// expiringEnvelope matches GET <source>/expiring.
type expiringEnvelope struct {
	Data []store.ExpiringMarket `json:"data"`
}

// Client talks to the sweep data source over REST.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchSweeps retrieves the current window of sweep trades.
func (c *Client) FetchSweeps(ctx context.Context) ([]store.Sweep, error) {
	var env sweepsEnvelope
	if err := c.getJSON(ctx, "/sweeps", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchExpiring retrieves the markets closing soon.
func (c *Client) FetchExpiring(ctx context.Context) ([]store.ExpiringMarket, error) {
	var env expiringEnvelope
	if err := c.getJSON(ctx, "/expiring", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchAll runs both fetches concurrently and fails atomically: if either
// side errors, nothing is returned and the caller must not apply a
// partial update.
func (c *Client) FetchAll(ctx context.Context) ([]store.Sweep, []store.ExpiringMarket, error) {
	var (
		sweeps   []store.Sweep
		expiring []store.ExpiringMarket
	)
	errs := make(chan error, 2)

	go func() {
		var err error
		sweeps, err = c.FetchSweeps(ctx)
		errs <- err
	}()
	go func() {
		var err error
		expiring, err = c.FetchExpiring(ctx)
		errs <- err
	}()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, nil, err
		}
	}
	return sweeps, expiring, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrSourceUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d on %s", ErrSourceUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrSourceUnavailable, path, err)
	}
	return nil
}
