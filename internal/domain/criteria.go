package domain

import "time"

// Fixed browsing constants. None of these are user configurable.
const (
	// PageSize is the number of repositories requested per page.
	PageSize = 28

	// DebounceInterval is the quiet period before typed text triggers a search.
	DebounceInterval = 500 * time.Millisecond

	// PaginationWindow is the number of page controls shown at once.
	PaginationWindow = 10

	// DefaultSearchTerm replaces a blank query.
	DefaultSearchTerm = "react"
)

// SearchCriteria is the immutable description of one search request.
// A new value is built for every request; use the With* methods to derive one.
type SearchCriteria struct {
	text     string
	sort     SortField
	page     int
	pageSize int
}

// NewSearchCriteria creates criteria with the fixed page size.
// Invalid sort fields fall back to DefaultSortField and pages below 1 become 1.
func NewSearchCriteria(text string, sort SortField, page int) SearchCriteria {
	if !sort.IsValid() {
		sort = DefaultSortField
	}
	if page < 1 {
		page = 1
	}
	return SearchCriteria{
		text:     text,
		sort:     sort,
		page:     page,
		pageSize: PageSize,
	}
}

// DefaultSearchCriteria returns the criteria a session starts with.
func DefaultSearchCriteria() SearchCriteria {
	return NewSearchCriteria("", DefaultSortField, 1)
}

// Text returns the raw search text as typed by the user.
func (c SearchCriteria) Text() string {
	return c.text
}

// Sort returns the sort field.
func (c SearchCriteria) Sort() SortField {
	return c.sort
}

// Page returns the 1-based page number.
func (c SearchCriteria) Page() int {
	return c.page
}

// PageSize returns the number of items per page.
func (c SearchCriteria) PageSize() int {
	return c.pageSize
}

// WithText returns a copy for a fresh query: new text, page reset to 1.
func (c SearchCriteria) WithText(text string) SearchCriteria {
	c.text = text
	c.page = 1
	return c
}

// WithSort returns a copy with a different sort field.
func (c SearchCriteria) WithSort(sort SortField) SearchCriteria {
	if sort.IsValid() {
		c.sort = sort
	}
	return c
}

// WithPage returns a copy pointing at another page.
func (c SearchCriteria) WithPage(page int) SearchCriteria {
	if page < 1 {
		page = 1
	}
	c.page = page
	return c
}
