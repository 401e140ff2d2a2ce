// Package query holds filter types shared by list queries.
package query

// PageFilter carries pagination parameters. Page is 1-based.
type PageFilter struct {
	Page  int
	Limit int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize()
}

// PageSize returns the effective page size, defaulting to 10 and capping at 100.
func (f PageFilter) PageSize() int {
	if f.Limit <= 0 {
		return 10
	}
	if f.Limit > 100 {
		return 100
	}
	return f.Limit
}

// NormalizedPage returns the 1-based page number, never below 1.
func (f PageFilter) NormalizedPage() int {
	if f.Page <= 0 {
		return 1
	}
	return f.Page
}
