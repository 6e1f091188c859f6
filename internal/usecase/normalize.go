package usecase

import (
	"fmt"

	gh "github.com/google/go-github/v73/github"

	"github.com/yourusername/repobrowser/internal/domain"
)

// normalizeSearchResult converts a raw search payload into a domain page.
// A payload missing total_count or items, or holding an item without id, name
// or owner, fails as a whole.
func normalizeSearchResult(raw *gh.RepositoriesSearchResult, pageSize int) (domain.QueryResult, error) {
	if raw == nil {
		return domain.QueryResult{}, &domain.MalformedPayloadError{Reason: "empty response"}
	}
	if raw.Total == nil {
		return domain.QueryResult{}, &domain.MalformedPayloadError{Reason: "missing total_count"}
	}
	if raw.Repositories == nil {
		return domain.QueryResult{}, &domain.MalformedPayloadError{Reason: "missing items"}
	}

	items := make([]domain.RepositoryItem, 0, len(raw.Repositories))
	for i, repo := range raw.Repositories {
		item, err := normalizeRepository(repo)
		if err != nil {
			return domain.QueryResult{}, &domain.MalformedPayloadError{
				Reason: fmt.Sprintf("item %d", i),
				Err:    err,
			}
		}
		items = append(items, item)
	}

	return domain.NewQueryResult(items, raw.GetTotal(), pageSize), nil
}

func normalizeRepository(repo *gh.Repository) (domain.RepositoryItem, error) {
	if repo == nil {
		return domain.RepositoryItem{}, fmt.Errorf("null repository")
	}
	if repo.ID == nil {
		return domain.RepositoryItem{}, fmt.Errorf("missing id")
	}
	if repo.Name == nil {
		return domain.RepositoryItem{}, fmt.Errorf("repository %d: missing name", repo.GetID())
	}
	if repo.Owner == nil || repo.Owner.Login == nil {
		return domain.RepositoryItem{}, fmt.Errorf("repository %d: missing owner", repo.GetID())
	}

	return domain.NewRepositoryItem(domain.RepositoryItemParams{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		HTMLURL:     repo.GetHTMLURL(),
		OwnerLogin:  repo.GetOwner().GetLogin(),
		AvatarURL:   repo.GetOwner().GetAvatarURL(),
		Description: repo.Description,
		Language:    repo.Language,
		StarCount:   repo.GetStargazersCount(),
	})
}
