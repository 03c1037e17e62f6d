package views

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatUSD renders an amount as whole dollars with thousands
// separators, e.g. "$12,345".
func FormatUSD(amount float64) string {
	n := int64(math.Floor(amount))
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// FormatPrice renders a 0-1 price as a percentage with one decimal,
// e.g. "62.5%".
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.1f%%", price*100)
}

// TimeAgo renders the elapsed time since a Unix-seconds timestamp in the
// coarsest sensible unit: "45s ago", "12m ago", "3h ago", "2d ago".
func TimeAgo(timestamp int64, now time.Time) string {
	seconds := now.Unix() - timestamp
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	default:
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
}

// FormatHours renders an hours-until-expiry value, e.g. "5.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
