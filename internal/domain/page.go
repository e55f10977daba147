package domain

// PageRequest is a 1-based page window. Bounds are enforced by callers.
type PageRequest struct {
	PageNumber int
	PageSize   int
}

// Offset is the number of rows skipped before the requested page.
func (p PageRequest) Offset() int {
	if p.PageNumber < 1 {
		return 0
	}
	return (p.PageNumber - 1) * p.PageSize
}

// Page is one slice of a filtered result set plus the total number of matches.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
}
