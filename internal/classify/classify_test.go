package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSports(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		title string
		want  bool
	}{
		{"nfl slug prefix", "nfl-chiefs-vs-bills", "Chiefs vs Bills", true},
		{"keyword in title only", "some-market", "Premier-League winner 2026", true},
		{"case insensitive", "MLB-Yankees", "", true},
		{"world cup", "", "Who wins the World-Cup?", true},
		{"no match", "rate-cut-september", "Fed cuts rates in September?", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSports(tt.slug, tt.title))
		})
	}
}

func TestIsCrypto(t *testing.T) {
	assert.True(t, IsCrypto("bitcoin-100k-2026", ""))
	assert.True(t, IsCrypto("", "Will ETH flip BTC?"))
	assert.True(t, IsCrypto("", "SOLANA all time high"))
	assert.False(t, IsCrypto("election-winner", "Presidential election winner"))
}

func TestCategoryOverlap(t *testing.T) {
	// A market may match both categories, or neither.
	slug, title := "nba-bitcoin-promo", "NBA team accepts Bitcoin?"
	assert.True(t, IsSports(slug, title))
	assert.True(t, IsCrypto(slug, title))
}

func TestSweepHeat(t *testing.T) {
	tests := []struct {
		amount     float64
		wantClass  string
		wantWeight int
		wantMarker string
	}{
		{0, "amount-small", 0, ""},
		{299.99, "amount-small", 0, ""},
		{300, "amount-small", 1, ""}, // inclusive lower bound
		{499, "amount-small", 1, ""},
		{500, "amount-medium", 2, ""},
		{1000, "amount-large", 3, "💰"},
		{4999, "amount-large", 3, "💰"},
		{5000, "amount-giant", 4, "🔥"},
		{1_000_000, "amount-giant", 4, "🔥"},
	}

	for _, tt := range tests {
		h := SweepHeat(tt.amount)
		assert.Equal(t, tt.wantClass, h.Class, "amount %v", tt.amount)
		assert.Equal(t, tt.wantWeight, h.Weight, "amount %v", tt.amount)
		assert.Equal(t, tt.wantMarker, h.Marker, "amount %v", tt.amount)
	}
}

func TestAggregateHeat(t *testing.T) {
	tests := []struct {
		amount     float64
		wantClass  string
		wantWeight int
	}{
		{4999, "amount-small", 0},
		{5000, "amount-medium", 1},
		{10000, "amount-large", 2},
		{50000, "amount-huge", 3},
		{99999, "amount-huge", 3},
		{100000, "amount-giant", 4},
	}

	for _, tt := range tests {
		h := AggregateHeat(tt.amount)
		assert.Equal(t, tt.wantClass, h.Class, "amount %v", tt.amount)
		assert.Equal(t, tt.wantWeight, h.Weight, "amount %v", tt.amount)
	}
}

func TestTablesNotMerged(t *testing.T) {
	// $5,000 is the top per-sweep tier but only the bottom aggregate
	// tier. The tables must stay independent.
	assert.Equal(t, 4, SweepHeat(5000).Weight)
	assert.Equal(t, 1, AggregateHeat(5000).Weight)
}

func TestHighlightClass(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{100, "amount-small"},
		{5000, "amount-medium"},
		{10000, "amount-large"},
		{50000, "amount-huge"},
		{100000, "amount-giant"},
		{250000, "amount-godlike"},
		{500000, "amount-legendary"},
		{2_000_000, "amount-legendary"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HighlightClass(tt.amount), "amount %v", tt.amount)
	}
}
