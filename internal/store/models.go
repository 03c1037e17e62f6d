// Package store provides the data model and the per-poll working set.
package store

import (
	"fmt"
	"strings"
	"time"
)

// Sweep represents a single large trade against a market outcome.
type Sweep struct {
	// MarketSlug is the stable market identifier.
	MarketSlug string `json:"market_slug"`

	// Title is the human-readable market question.
	Title string `json:"title"`

	// Outcome is the traded side, e.g. "YES" or "NO".
	Outcome string `json:"outcome"`

	// AmountUSD is the trade value in dollars.
	AmountUSD float64 `json:"usd_amount"`

	// Price is the execution price (0-1 range for prediction markets).
	Price float64 `json:"price"`

	// Timestamp is the trade time in Unix seconds.
	Timestamp int64 `json:"timestamp"`

	// TransactionHash is the on-chain hash, if the source provides one.
	TransactionHash string `json:"transactionHash"`

	// IsNew marks a sweep first seen in the current poll. Set during
	// ingestion, never recomputed afterwards.
	IsNew bool `json:"-"`
}

// Valid reports whether the sweep carries the minimum displayable data.
// Sweeps failing this check are dropped before they enter the working set.
func (s Sweep) Valid() bool {
	return strings.TrimSpace(s.Title) != "" && strings.TrimSpace(s.Outcome) != ""
}

// IdentityKey derives the change-detection key for the sweep: the
// transaction hash when present, otherwise timestamp plus amount. The key
// only decides whether a sweep is newly arrived; it is not a primary key
// and the working set may contain duplicates.
func (s Sweep) IdentityKey() string {
	if s.TransactionHash != "" {
		return s.TransactionHash
	}
	return fmt.Sprintf("%d-%v", s.Timestamp, s.AmountUSD)
}

// Time returns the trade time as a time.Time.
func (s Sweep) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// ExpiringMarket represents a market approaching its close time.
// Refreshed wholesale each poll; no change tracking applies.
type ExpiringMarket struct {
	MarketSlug string  `json:"market_slug"`
	Title      string  `json:"title"`
	HoursUntil float64 `json:"hours_until"`
}

// Snapshot is the working set produced by one successful poll.
type Snapshot struct {
	Sweeps    []Sweep
	Expiring  []ExpiringMarket
	FetchedAt time.Time
}
