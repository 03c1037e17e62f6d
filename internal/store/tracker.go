package store

import (
	"sort"
)

// Tracker detects newly arrived sweeps across polls by remembering the
// identity keys of the previous poll. It is not safe for concurrent use;
// a single poll goroutine owns it.
type Tracker struct {
	prevKeys map[string]struct{}
}

// NewTracker creates a Tracker with an empty previous-poll key set, so
// every sweep in the first poll is flagged as new.
func NewTracker() *Tracker {
	return &Tracker{prevKeys: make(map[string]struct{})}
}

// Ingest prepares one poll's raw sweeps for display:
//
//  1. sweeps with blank title or outcome are dropped,
//  2. the remainder is stable-sorted newest first, so reordering never
//     causes row jumps between polls,
//  3. each sweep is flagged IsNew iff its identity key was absent from
//     the previous poll,
//  4. the previous key set is replaced with the current poll's keys.
//
// The returned slice is freshly allocated; the input is not mutated.
func (t *Tracker) Ingest(raw []Sweep) []Sweep {
	sweeps := make([]Sweep, 0, len(raw))
	for _, s := range raw {
		if s.Valid() {
			sweeps = append(sweeps, s)
		}
	}

	sort.SliceStable(sweeps, func(i, j int) bool {
		return sweeps[i].Timestamp > sweeps[j].Timestamp
	})

	keys := make(map[string]struct{}, len(sweeps))
	for i := range sweeps {
		key := sweeps[i].IdentityKey()
		keys[key] = struct{}{}
		if _, seen := t.prevKeys[key]; !seen {
			sweeps[i].IsNew = true
		}
	}
	t.prevKeys = keys

	return sweeps
}
