package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, sweepsBody, expiringBody string, sweepsStatus, expiringStatus int) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sweeps":
			w.WriteHeader(sweepsStatus)
			_, _ = w.Write([]byte(sweepsBody))
		case "/expiring":
			w.WriteHeader(expiringStatus)
			_, _ = w.Write([]byte(expiringBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

const sweepsJSON = `{"data": [
	{"market_slug": "rate-cut", "title": "Fed cuts rates?", "outcome": "YES",
	 "usd_amount": 2500.5, "price": 0.62, "timestamp": 1700000000,
	 "transactionHash": "0xabc"},
	{"market_slug": "no-hash", "title": "No hash market", "outcome": "NO",
	 "usd_amount": 100, "price": 0.3, "timestamp": 1700000100}
]}`

const expiringJSON = `{"data": [
	{"market_slug": "ending", "title": "Ending soon", "hours_until": 3.5}
]}`

func TestFetchSweeps(t *testing.T) {
	c := newTestSource(t, sweepsJSON, expiringJSON, http.StatusOK, http.StatusOK)

	sweeps, err := c.FetchSweeps(context.Background())
	require.NoError(t, err)
	require.Len(t, sweeps, 2)
	assert.Equal(t, "rate-cut", sweeps[0].MarketSlug)
	assert.Equal(t, "0xabc", sweeps[0].TransactionHash)
	assert.InDelta(t, 2500.5, sweeps[0].AmountUSD, 1e-9)
	assert.Equal(t, int64(1700000100), sweeps[1].Timestamp)
	assert.Empty(t, sweeps[1].TransactionHash)
}

func TestFetchExpiring(t *testing.T) {
	c := newTestSource(t, sweepsJSON, expiringJSON, http.StatusOK, http.StatusOK)

	expiring, err := c.FetchExpiring(context.Background())
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "ending", expiring[0].MarketSlug)
	assert.InDelta(t, 3.5, expiring[0].HoursUntil, 1e-9)
}

func TestFetchAll_Succeeds(t *testing.T) {
	c := newTestSource(t, sweepsJSON, expiringJSON, http.StatusOK, http.StatusOK)

	sweeps, expiring, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, sweeps, 2)
	assert.Len(t, expiring, 1)
}

func TestFetchAll_FailsAtomically(t *testing.T) {
	// One side failing aborts the whole update.
	c := newTestSource(t, sweepsJSON, `{}`, http.StatusOK, http.StatusInternalServerError)

	sweeps, expiring, err := c.FetchAll(context.Background())
	require.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Nil(t, sweeps)
	assert.Nil(t, expiring)
}

func TestFetchSweeps_MalformedBody(t *testing.T) {
	c := newTestSource(t, `{"data": "not an array"`, expiringJSON, http.StatusOK, http.StatusOK)

	_, err := c.FetchSweeps(context.Background())
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestFetchSweeps_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.FetchSweeps(context.Background())
	require.ErrorIs(t, err, ErrSourceUnavailable)
}
