package views

// DefaultPageSize is the fixed number of rows per page.
const DefaultPageSize = 15

// maxPageButtons is the widest run of numbered page buttons the pager
// model exposes.
const maxPageButtons = 10

// Window computes the half-open index range [start, end) for a 1-based
// page over a list of length n. A page past the end yields an empty
// window; the page number itself is never corrected here, so a view that
// shrinks under the current page renders an empty body instead of
// silently jumping.
func Window(n, page, size int) (start, end int) {
	if size <= 0 || page < 1 {
		return 0, 0
	}
	start = (page - 1) * size
	if start >= n {
		return n, n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end
}

// TotalPages returns the number of pages needed for n rows.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Pager describes the pagination controls for a view: which numbered
// buttons to show, whether the run is elided at either end, and whether
// previous/next are enabled. The renderer draws it verbatim.
type Pager struct {
	Current     int
	Total       int
	Pages       []int
	First       bool
	LeadingGap  bool
	TrailingGap bool
	Last        bool
	HasPrev     bool
	HasNext     bool
}

// NewPager builds the pager model for n rows at the given page. A single
// page (or none) yields a zero Pager, which the renderer hides.
func NewPager(n, page, size int) Pager {
	total := TotalPages(n, size)
	if total <= 1 {
		return Pager{}
	}

	start := page - 4
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > total {
		end = total
	}

	p := Pager{
		Current: page,
		Total:   total,
		HasPrev: page > 1,
		HasNext: page < total,
	}
	if start > 1 {
		p.First = true
		p.LeadingGap = start > 2
	}
	for i := start; i <= end; i++ {
		p.Pages = append(p.Pages, i)
	}
	if end < total {
		p.Last = true
		p.TrailingGap = end < total-1
	}
	return p
}
