package usecase

import (
	"testing"

	gh "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/repobrowser/internal/domain"
)

func TestNormalizeSearchResult(t *testing.T) {
	raw := payload("react", 3, 100)
	raw.Repositories[0].Description = gh.Ptr("A JavaScript library")
	raw.Repositories[0].Language = gh.Ptr("JavaScript")
	raw.Repositories[1].Description = gh.Ptr("")

	result, err := normalizeSearchResult(raw, domain.PageSize)
	require.NoError(t, err)

	require.Equal(t, 3, result.Len())
	require.Equal(t, 100, result.TotalCount())
	require.Equal(t, 4, result.TotalPages())

	first := result.Items()[0]
	require.Equal(t, "react-1", first.Name())
	require.Equal(t, "owner/react-1", first.FullName())
	require.Equal(t, "owner", first.OwnerLogin())
	require.Equal(t, "A JavaScript library", first.Description())
	require.Equal(t, "JavaScript", first.Language())

	second := result.Items()[1]
	require.False(t, second.HasDescription())
	require.Equal(t, domain.DescriptionPlaceholder, second.Description())
	require.Equal(t, domain.LanguagePlaceholder, second.Language())
}

func TestNormalizeSearchResult_EmptyItems(t *testing.T) {
	raw := &gh.RepositoriesSearchResult{Total: gh.Ptr(0), Repositories: []*gh.Repository{}}

	result, err := normalizeSearchResult(raw, domain.PageSize)
	require.NoError(t, err)
	require.True(t, result.IsEmpty())
	require.Equal(t, 0, result.TotalPages())
}

func TestNormalizeSearchResult_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult
	}{
		{"nil payload", func(*gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult { return nil }},
		{"missing total", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Total = nil
			return raw
		}},
		{"missing items", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories = nil
			return raw
		}},
		{"null item", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories[1] = nil
			return raw
		}},
		{"item without id", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories[1].ID = nil
			return raw
		}},
		{"item without name", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories[0].Name = nil
			return raw
		}},
		{"item without owner", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories[2].Owner = nil
			return raw
		}},
		{"negative stars", func(raw *gh.RepositoriesSearchResult) *gh.RepositoriesSearchResult {
			raw.Repositories[0].StargazersCount = gh.Ptr(-1)
			return raw
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeSearchResult(tt.mutate(payload("x", 3, 3)), domain.PageSize)
			require.Error(t, err)
			require.Equal(t, domain.ErrorKindMalformedPayload, domain.ErrorKindOf(err))
		})
	}
}
