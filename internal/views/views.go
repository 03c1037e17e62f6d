package views

import (
	"sort"
	"strings"
	"time"

	"github.com/sweepwatch/engine/internal/classify"
	"github.com/sweepwatch/engine/internal/store"
)

// SweepRow is one trade row in the feed and whale views.
type SweepRow struct {
	Sweep     store.Sweep
	Heat      classify.Heat
	Highlight string
	IsNew     bool
}

// MarketRow is one aggregated market row in the grouped views. Count is
// only meaningful for clusters and Price only for edge markets.
type MarketRow struct {
	Slug   string
	Title  string
	Volume float64
	Count  int
	Price  float64
	Heat   classify.Heat
}

// Urgency grades how close an expiring market is to its close time.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyWarning
	UrgencyCritical
)

// ExpiringRow is one row in the closing-soon view.
type ExpiringRow struct {
	Market  store.ExpiringMarket
	Urgency Urgency
}

// FeedRows returns every filtered sweep as a display row, in the
// ingestion order (newest first).
func FeedRows(sweeps []store.Sweep, f Filters) []SweepRow {
	return sweepRows(filterSweeps(sweeps, f))
}

// WhaleRows returns sweeps at or above minUSD within the trailing window,
// ending at now. The whale view is a fixed-definition alert feed: it
// bypasses the user's filters entirely so its meaning never shifts with
// dashboard state.
func WhaleRows(sweeps []store.Sweep, now time.Time, minUSD float64, window time.Duration) []SweepRow {
	cutoff := now.Add(-window).Unix()
	whales := make([]store.Sweep, 0, len(sweeps))
	for _, s := range sweeps {
		if s.AmountUSD >= minUSD && s.Timestamp >= cutoff {
			whales = append(whales, s)
		}
	}
	return sweepRows(whales)
}

func sweepRows(sweeps []store.Sweep) []SweepRow {
	rows := make([]SweepRow, len(sweeps))
	for i, s := range sweeps {
		rows[i] = SweepRow{
			Sweep:     s,
			Heat:      classify.SweepHeat(s.AmountUSD),
			Highlight: classify.HighlightClass(s.AmountUSD),
			IsNew:     s.IsNew,
		}
	}
	return rows
}

// NoMarketRows groups filtered sweeps with outcome "NO" (case-insensitive)
// by market and sums their volume, ordered by volume descending. Markets
// with no NO-side sweeps do not appear.
func NoMarketRows(sweeps []store.Sweep, f Filters) []MarketRow {
	agg := newAggregator()
	for _, s := range filterSweeps(sweeps, f) {
		if !strings.EqualFold(s.Outcome, "NO") {
			continue
		}
		m := agg.market(s)
		m.Volume += s.AmountUSD
		m.Count++
	}
	rows := agg.rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Volume > rows[j].Volume
	})
	for i := range rows {
		rows[i].Heat = classify.AggregateHeat(rows[i].Volume)
	}
	return rows
}

// EdgeMarketRows reduces filtered sweeps to the most recent price per
// market and keeps markets whose latest price sits strictly inside
// (0.15, 0.85), ordered by price ascending. Exactly 0.15 or 0.85 is
// excluded.
func EdgeMarketRows(sweeps []store.Sweep, f Filters) []MarketRow {
	agg := newAggregator()
	latest := make(map[string]int64)
	for _, s := range filterSweeps(sweeps, f) {
		m := agg.market(s)
		if ts, ok := latest[s.MarketSlug]; !ok || s.Timestamp > ts {
			latest[s.MarketSlug] = s.Timestamp
			m.Price = s.Price
		}
	}
	all := agg.rows()
	rows := make([]MarketRow, 0, len(all))
	for _, r := range all {
		if r.Price > 0.15 && r.Price < 0.85 {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Price < rows[j].Price
	})
	return rows
}

// ClusterRows groups filtered sweeps by market and keeps markets hit by
// at least two sweeps, ordered by sweep count descending. Ties keep
// first-seen order.
func ClusterRows(sweeps []store.Sweep, f Filters) []MarketRow {
	agg := newAggregator()
	for _, s := range filterSweeps(sweeps, f) {
		m := agg.market(s)
		m.Count++
		m.Volume += s.AmountUSD
	}
	all := agg.rows()
	rows := make([]MarketRow, 0, len(all))
	for _, r := range all {
		if r.Count >= 2 {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	for i := range rows {
		rows[i].Heat = classify.AggregateHeat(rows[i].Volume)
	}
	return rows
}

// ClosingSoonRows returns the expiring markets in source order, graded by
// urgency. No filter layer applies here; the records have no amount or
// category dimension.
func ClosingSoonRows(expiring []store.ExpiringMarket) []ExpiringRow {
	rows := make([]ExpiringRow, len(expiring))
	for i, m := range expiring {
		rows[i] = ExpiringRow{Market: m, Urgency: expiryUrgency(m.HoursUntil)}
	}
	return rows
}

func expiryUrgency(hours float64) Urgency {
	switch {
	case hours < 6:
		return UrgencyCritical
	case hours < 24:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// aggregator accumulates per-market rows preserving first-seen order and
// first-seen title.
type aggregator struct {
	index map[string]int
	order []MarketRow
}

func newAggregator() *aggregator {
	return &aggregator{index: make(map[string]int)}
}

func (a *aggregator) market(s store.Sweep) *MarketRow {
	if i, ok := a.index[s.MarketSlug]; ok {
		return &a.order[i]
	}
	a.index[s.MarketSlug] = len(a.order)
	a.order = append(a.order, MarketRow{Slug: s.MarketSlug, Title: s.Title})
	return &a.order[len(a.order)-1]
}

func (a *aggregator) rows() []MarketRow {
	return a.order
}
