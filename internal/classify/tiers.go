package classify

// Heat is the display intensity of a dollar amount: an optional marker
// glyph, a style class the renderer maps to a color, and a weight for
// relative emphasis (0 = baseline).
type Heat struct {
	Marker string
	Class  string
	Weight int
}

type heatTier struct {
	threshold float64
	heat      Heat
}

// Three independent threshold tables exist on purpose. Individual sweeps
// are much smaller than summed market volumes, so a shared table would
// make whale markers either ubiquitous at the aggregate level or
// invisible per sweep. Do not merge them.
var sweepHeatTiers = []heatTier{
	{5000, Heat{Marker: "🔥", Class: "amount-giant", Weight: 4}},
	{1000, Heat{Marker: "💰", Class: "amount-large", Weight: 3}},
	{500, Heat{Marker: "", Class: "amount-medium", Weight: 2}},
	{300, Heat{Marker: "", Class: "amount-small", Weight: 1}},
}

var aggregateHeatTiers = []heatTier{
	{100000, Heat{Marker: "🔥", Class: "amount-giant", Weight: 4}},
	{50000, Heat{Marker: "⚡", Class: "amount-huge", Weight: 3}},
	{10000, Heat{Marker: "💰", Class: "amount-large", Weight: 2}},
	{5000, Heat{Marker: "", Class: "amount-medium", Weight: 1}},
}

// SweepHeat buckets a single trade amount. Thresholds are inclusive
// lower bounds; the highest matching tier wins. Below $300 the baseline
// (no marker, zero weight) is returned.
func SweepHeat(amount float64) Heat {
	return lookupHeat(sweepHeatTiers, amount, Heat{Class: "amount-small"})
}

// AggregateHeat buckets a summed per-market volume. Below $5,000 the
// baseline is returned.
func AggregateHeat(amount float64) Heat {
	return lookupHeat(aggregateHeatTiers, amount, Heat{Class: "amount-small"})
}

func lookupHeat(tiers []heatTier, amount float64, baseline Heat) Heat {
	for _, t := range tiers {
		if amount >= t.threshold {
			return t.heat
		}
	}
	return baseline
}

type highlightTier struct {
	threshold float64
	class     string
}

// Row-highlight buckets for single-record emphasis. Independent of the
// two heat tables above.
var highlightTiers = []highlightTier{
	{500000, "amount-legendary"},
	{250000, "amount-godlike"},
	{100000, "amount-giant"},
	{50000, "amount-huge"},
	{10000, "amount-large"},
	{5000, "amount-medium"},
}

// HighlightClass returns the row-emphasis style class for a single trade
// amount, with inclusive lower bounds and highest-matching-tier wins.
func HighlightClass(amount float64) string {
	for _, t := range highlightTiers {
		if amount >= t.threshold {
			return t.class
		}
	}
	return "amount-small"
}
