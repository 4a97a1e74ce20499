package pagination

// defaultWindow is the number of page links a pager shows at once.
const defaultWindow = 5

// Pagination holds the derived state for one page of a collection. All
// fields are computed by New; treat them as read-only.
type Pagination struct {
	Total   int // total item count
	PerPage int // items per page
	Current int // clamped current page, 1-based
	Pages   int // total page count, at least 1

	// Window is the run of page numbers a pager should render, centered
	// on Current and clamped to [1, Pages].
	Window []int
}

// Option configures pagination during construction.
type Option func(*settings)

type settings struct {
	window int
}

// WithWindow sets how many page numbers the Window covers. Values below
// 1 fall back to the default of 5.
func WithWindow(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.window = n
		}
	}
}

// New computes pagination for a collection of total items shown perPage
// at a time. Out-of-range input is clamped rather than rejected: a
// non-positive perPage becomes 1, and current is forced into [1, Pages].
func New(total, perPage, current int, opts ...Option) Pagination {
	cfg := settings{window: defaultWindow}
	for _, opt := range opts {
		opt(&cfg)
	}

	if total < 0 {
		total = 0
	}
	if perPage < 1 {
		perPage = 1
	}

	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}

	if current < 1 {
		current = 1
	}
	if current > pages {
		current = pages
	}

	return Pagination{
		Total:   total,
		PerPage: perPage,
		Current: current,
		Pages:   pages,
		Window:  window(current, pages, cfg.window),
	}
}

// Offset returns the index of the first item on the current page,
// suitable for slicing or query offsets.
func (p Pagination) Offset() int {
	return (p.Current - 1) * p.PerPage
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Current > 1
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.Current < p.Pages
}

// Prev returns the previous page number, clamped to 1.
func (p Pagination) Prev() int {
	if p.Current <= 1 {
		return 1
	}
	return p.Current - 1
}

// Next returns the next page number, clamped to the last page.
func (p Pagination) Next() int {
	if p.Current >= p.Pages {
		return p.Pages
	}
	return p.Current + 1
}

// window centers a run of size numbers on current, shifting it to stay
// inside [1, pages] near the edges.
func window(current, pages, size int) []int {
	if size > pages {
		size = pages
	}

	start := current - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > pages {
		start = pages - size + 1
	}

	out := make([]int, size)
	for i := range out {
		out[i] = start + i
	}
	return out
}
