package usecase

import (
	"context"
	"fmt"
	"sync"

	gh "github.com/google/go-github/v73/github"

	"github.com/yourusername/repobrowser/internal/adapter/github"
)

type fakeSearcher struct {
	mu       sync.Mutex
	requests []github.SearchRequest
	respond  func(req github.SearchRequest) (*gh.RepositoriesSearchResult, error)
}

func (f *fakeSearcher) SearchRepositories(_ context.Context, req github.SearchRequest) (*gh.RepositoriesSearchResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeSearcher) calls() []github.SearchRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]github.SearchRequest(nil), f.requests...)
}

// payload builds a search result with n repositories named after prefix.
func payload(prefix string, n, total int) *gh.RepositoriesSearchResult {
	repos := make([]*gh.Repository, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s-%d", prefix, i)
		repos = append(repos, &gh.Repository{
			ID:              gh.Ptr(int64(i)),
			Name:            gh.Ptr(name),
			FullName:        gh.Ptr("owner/" + name),
			HTMLURL:         gh.Ptr("https://github.com/owner/" + name),
			StargazersCount: gh.Ptr(i),
			Owner: &gh.User{
				Login:     gh.Ptr("owner"),
				AvatarURL: gh.Ptr("https://avatars.githubusercontent.com/u/1"),
			},
		})
	}
	return &gh.RepositoriesSearchResult{
		Total:        gh.Ptr(total),
		Repositories: repos,
	}
}
