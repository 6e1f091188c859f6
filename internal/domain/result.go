package domain

// QueryResult is one page of search results.
type QueryResult struct {
	items      []RepositoryItem
	totalCount int
	totalPages int
}

// NewQueryResult creates a QueryResult. Items keep the order the API returned.
func NewQueryResult(items []RepositoryItem, totalCount, pageSize int) QueryResult {
	if totalCount < 0 {
		totalCount = 0
	}
	copied := make([]RepositoryItem, len(items))
	copy(copied, items)

	return QueryResult{
		items:      copied,
		totalCount: totalCount,
		totalPages: TotalPages(totalCount, pageSize),
	}
}

// TotalPages returns ceil(totalCount / pageSize).
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Items returns the repositories on this page.
func (r QueryResult) Items() []RepositoryItem {
	return r.items
}

// Len returns the number of repositories on this page.
func (r QueryResult) Len() int {
	return len(r.items)
}

// TotalCount returns the number of matches reported by the API.
func (r QueryResult) TotalCount() int {
	return r.totalCount
}

// TotalPages returns the number of pages for the whole result set.
func (r QueryResult) TotalPages() int {
	return r.totalPages
}

// IsEmpty reports whether the page has no repositories.
func (r QueryResult) IsEmpty() bool {
	return len(r.items) == 0
}

// Messages shown in place of, or next to, a result list.
const (
	EmptyResultMessage = "Search returned zero repositories. Please refine your search terms."
	FetchErrorMessage  = "Couldn't load repositories. Showing the last results."
)
