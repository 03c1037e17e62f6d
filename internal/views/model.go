package views

import (
	"time"

	"github.com/sweepwatch/engine/internal/store"
)

// Tab identifies one of the dashboard views.
type Tab int

const (
	TabFeed Tab = iota
	TabWhales
	TabNoMarkets
	TabEdgeMarkets
	TabClosingSoon
	TabClusters
)

// Tabs lists every view in display order.
var Tabs = []Tab{TabFeed, TabWhales, TabNoMarkets, TabEdgeMarkets, TabClosingSoon, TabClusters}

func (t Tab) String() string {
	switch t {
	case TabFeed:
		return "Sweeps"
	case TabWhales:
		return "Whales"
	case TabNoMarkets:
		return "NO Markets"
	case TabEdgeMarkets:
		return "Edge Markets"
	case TabClosingSoon:
		return "Closing Soon"
	case TabClusters:
		return "Clusters"
	}
	return "Unknown"
}

// Session is the process-local UI state: active tab, current page and
// filter settings. A single controller owns it; nothing here persists.
type Session struct {
	ActiveTab Tab
	Page      int
	Filters   Filters
}

// NewSession returns the initial session state.
func NewSession() Session {
	return Session{ActiveTab: TabFeed, Page: 1}
}

// SwitchTab activates a tab, resetting the page to 1 when the tab
// actually changes. Filter changes never touch the page.
func (s *Session) SwitchTab(tab Tab) {
	if s.ActiveTab != tab {
		s.Page = 1
	}
	s.ActiveTab = tab
}

// GoToPage navigates to a 1-based page. Requests below page 1 are
// ignored; pages past the end are allowed and render empty.
func (s *Session) GoToPage(page int) {
	if page < 1 {
		return
	}
	s.Page = page
}

// Kind discriminates the view model handed to the renderer.
type Kind int

const (
	KindRows Kind = iota
	KindEmpty
	KindError
)

// EmptyReason explains why a view rendered without rows.
type EmptyReason int

const (
	// NoDataForView means the view's own predicate matched nothing.
	NoDataForView EmptyReason = iota
	// FiltersExcludeAll means sweeps exist but the user's filters
	// removed all of them.
	FiltersExcludeAll
)

// Options carries the fixed view parameters, normally taken from config.
type Options struct {
	PageSize    int
	WhaleMinUSD float64
	WhaleWindow time.Duration
}

// DefaultOptions mirrors the dashboard's built-in behavior.
func DefaultOptions() Options {
	return Options{
		PageSize:    DefaultPageSize,
		WhaleMinUSD: 5000,
		WhaleWindow: 4 * time.Hour,
	}
}

// Model is what one render cycle hands to the render boundary: the
// paginated rows of the active view plus pagination metadata, or a
// canonical empty/error state. Exactly one of the row slices is
// populated, matching the tab.
type Model struct {
	Tab         Tab
	Kind        Kind
	EmptyReason EmptyReason
	Err         error

	// Total is the unpaginated row count, for pagination controls.
	Total    int
	Page     int
	PageSize int
	Pager    Pager

	SweepRows    []SweepRow
	MarketRows   []MarketRow
	ExpiringRows []ExpiringRow
}

// ErrorModel builds the source-unavailable view for a tab.
func ErrorModel(tab Tab, err error) Model {
	return Model{Tab: tab, Kind: KindError, Err: err}
}

// Build computes the active tab's full view model from the snapshot and
// session: rows, filtering, ordering, and the page window. now anchors
// the whale view's trailing time window.
func Build(snap store.Snapshot, sess Session, now time.Time, opts Options) Model {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	m := Model{Tab: sess.ActiveTab, Page: sess.Page, PageSize: opts.PageSize}

	switch sess.ActiveTab {
	case TabFeed:
		rows := FeedRows(snap.Sweeps, sess.Filters)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.SweepRows = rows[start:end]
	case TabWhales:
		rows := WhaleRows(snap.Sweeps, now, opts.WhaleMinUSD, opts.WhaleWindow)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.SweepRows = rows[start:end]
	case TabNoMarkets:
		rows := NoMarketRows(snap.Sweeps, sess.Filters)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.MarketRows = rows[start:end]
	case TabEdgeMarkets:
		rows := EdgeMarketRows(snap.Sweeps, sess.Filters)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.MarketRows = rows[start:end]
	case TabClosingSoon:
		rows := ClosingSoonRows(snap.Expiring)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.ExpiringRows = rows[start:end]
	case TabClusters:
		rows := ClusterRows(snap.Sweeps, sess.Filters)
		m.Total = len(rows)
		start, end := Window(len(rows), sess.Page, opts.PageSize)
		m.MarketRows = rows[start:end]
	}

	if m.Total == 0 {
		m.Kind = KindEmpty
		m.EmptyReason = emptyReason(sess.ActiveTab, snap, sess.Filters)
		return m
	}

	m.Kind = KindRows
	m.Pager = NewPager(m.Total, sess.Page, opts.PageSize)
	return m
}

// emptyReason distinguishes "the filters removed everything" from "this
// view has nothing to show". The whale and closing-soon views never
// consume the filter layer, so filters can never be the reason there.
func emptyReason(tab Tab, snap store.Snapshot, f Filters) EmptyReason {
	switch tab {
	case TabWhales, TabClosingSoon:
		return NoDataForView
	default:
		if len(snap.Sweeps) > 0 && len(filterSweeps(snap.Sweeps, f)) == 0 {
			return FiltersExcludeAll
		}
		return NoDataForView
	}
}
