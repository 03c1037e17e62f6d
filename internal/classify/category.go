// Package classify tags sweeps by market category and buckets dollar
// amounts into display-intensity tiers.
package classify

import "strings"

// Keyword lists are matched case-insensitively as substrings of the
// market slug and title. A market may match both lists, or neither.
var sportsKeywords = []string{
	"mlb-", "nfl-", "nba-", "nhl-", "ufc-", "f1-", "premier-league",
	"soccer", "football", "baseball", "basketball", "hockey", "tennis",
	"golf", "boxing", "mma", "olympics", "world-cup",
}

var cryptoKeywords = []string{
	"bitcoin", "btc", "ethereum", "eth", "solana", "sol",
	"xrp", "ripple", "doge", "dogecoin", "ada", "cardano",
	"matic", "polygon", "crypto", "cryptocurrency",
}

// IsSports reports whether the market slug or title mentions a sport or
// league.
func IsSports(slug, title string) bool {
	return matchesAny(slug, title, sportsKeywords)
}

// IsCrypto reports whether the market slug or title mentions a coin or
// ticker.
func IsCrypto(slug, title string) bool {
	return matchesAny(slug, title, cryptoKeywords)
}

func matchesAny(slug, title string, keywords []string) bool {
	slug = strings.ToLower(slug)
	title = strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(slug, kw) || strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
