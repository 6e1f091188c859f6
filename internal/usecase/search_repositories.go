package usecase

import (
	"context"
	"fmt"

	"github.com/yourusername/repobrowser/internal/adapter/github"
	"github.com/yourusername/repobrowser/internal/domain"
)

// SearchRepositoriesUseCase fetches a single page of search results.
type SearchRepositoriesUseCase struct {
	searcher github.Searcher
}

// NewSearchRepositoriesUseCase creates a new SearchRepositoriesUseCase.
func NewSearchRepositoriesUseCase(searcher github.Searcher) *SearchRepositoriesUseCase {
	return &SearchRepositoriesUseCase{searcher: searcher}
}

// SearchRepositoriesRequest contains the parameters for a search.
type SearchRepositoriesRequest struct {
	Text string
	Sort domain.SortField
	Page int
}

// SearchRepositoriesResponse contains one page of results.
type SearchRepositoriesResponse struct {
	Criteria domain.SearchCriteria
	Result   domain.QueryResult
	Message  string
}

// Execute runs the search.
func (uc *SearchRepositoriesUseCase) Execute(ctx context.Context, req SearchRepositoriesRequest) (*SearchRepositoriesResponse, error) {
	criteria := domain.NewSearchCriteria(req.Text, req.Sort, req.Page)

	raw, err := uc.searcher.SearchRepositories(ctx, github.FromCriteria(criteria))
	if err != nil {
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}

	result, err := normalizeSearchResult(raw, criteria.PageSize())
	if err != nil {
		return nil, fmt.Errorf("failed to read search results: %w", err)
	}

	var message string
	if result.IsEmpty() {
		message = domain.EmptyResultMessage
	} else {
		message = fmt.Sprintf("Page %d of %d (%s repositories)",
			criteria.Page(), result.TotalPages(), domain.FormatCount(result.TotalCount()))
	}

	return &SearchRepositoriesResponse{
		Criteria: criteria,
		Result:   result,
		Message:  message,
	}, nil
}
