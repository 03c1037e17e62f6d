// Package views builds the ordered row lists behind each dashboard tab.
// Every builder is a pure function of the current snapshot and filter
// settings, recomputed fully on every render.
package views

import (
	"strconv"
	"strings"

	"github.com/sweepwatch/engine/internal/classify"
	"github.com/sweepwatch/engine/internal/store"
)

// Filters holds the user-chosen predicates applied to the filtered views.
// The whale view deliberately ignores them.
type Filters struct {
	// MinAmountInput is the raw text of the minimum-amount field.
	// Unparseable or empty input means no minimum.
	MinAmountInput string
	IgnoreSports   bool
	IgnoreCrypto   bool
}

// MinAmount parses the minimum-amount input, treating invalid or missing
// input as zero.
func (f Filters) MinAmount() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.MinAmountInput), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Match reports whether a sweep passes the active filters.
func (f Filters) Match(s store.Sweep) bool {
	if s.AmountUSD < f.MinAmount() {
		return false
	}
	if f.IgnoreSports && classify.IsSports(s.MarketSlug, s.Title) {
		return false
	}
	if f.IgnoreCrypto && classify.IsCrypto(s.MarketSlug, s.Title) {
		return false
	}
	return true
}

func filterSweeps(sweeps []store.Sweep, f Filters) []store.Sweep {
	out := make([]store.Sweep, 0, len(sweeps))
	for _, s := range sweeps {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
