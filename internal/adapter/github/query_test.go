package github

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/repobrowser/internal/domain"
)

func TestBuildSearchRequest(t *testing.T) {
	req := BuildSearchRequest("bubbletea", domain.SortStars, 3, domain.PageSize)

	require.Equal(t, SearchEndpoint, req.Endpoint)
	require.Equal(t, "bubbletea", req.Params.Get("q"))
	require.Equal(t, "stars", req.Params.Get("sort"))
	require.Equal(t, "3", req.Params.Get("page"))
	require.Equal(t, "28", req.Params.Get("per_page"))
	require.Equal(t, "search/repositories?page=3&per_page=28&q=bubbletea&sort=stars", req.URL())
	require.Equal(t, domain.PageSize, req.PageSize())
}

func TestBuildSearchRequest_DefaultTerm(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		req := BuildSearchRequest(text, domain.SortCreated, 1, domain.PageSize)
		require.Equal(t, domain.DefaultSearchTerm, req.Query(), "text %q", text)
	}

	req := BuildSearchRequest("  go tui  ", domain.SortCreated, 1, domain.PageSize)
	require.Equal(t, "go tui", req.Query())
	require.Equal(t, "search/repositories?page=1&per_page=28&q=go+tui&sort=created_at", req.URL())
}

func TestBuildSearchRequest_IsPure(t *testing.T) {
	a := BuildSearchRequest("react", domain.SortUpdated, 2, domain.PageSize)
	b := BuildSearchRequest("react", domain.SortUpdated, 2, domain.PageSize)

	require.Equal(t, a, b)
	require.Equal(t, a.URL(), b.URL())
}

func TestFromCriteria(t *testing.T) {
	c := domain.NewSearchCriteria("", domain.SortName, 4)
	require.Equal(t, BuildSearchRequest("", domain.SortName, 4, domain.PageSize), FromCriteria(c))
}
