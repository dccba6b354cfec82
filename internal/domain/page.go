package domain

// PaginationParams carries page/limit values from the HTTP layer to the
// catalog listing. Page is 1-indexed. Limit is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil pointers fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bounds returns the [lo, hi) slice bounds of the page within a list of n
// items. A page past the end yields lo == hi == n, however large Page is.
func (p PaginationParams) Bounds(n int) (lo, hi int) {
	if n <= 0 || p.Page < 1 || p.Limit < 1 || p.Page-1 > (n-1)/p.Limit {
		return max(n, 0), max(n, 0)
	}
	lo = p.Offset()
	hi = min(lo+p.Limit, n)
	return lo, hi
}
