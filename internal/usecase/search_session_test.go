package usecase

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v73/github"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/repobrowser/internal/adapter/github"
	"github.com/yourusername/repobrowser/internal/domain"
)

// echoSearcher names every repository after the query it was asked for and
// reports total matches.
func echoSearcher(total int) *fakeSearcher {
	return &fakeSearcher{
		respond: func(req github.SearchRequest) (*gh.RepositoriesSearchResult, error) {
			n := req.PageSize()
			if total < n {
				n = total
			}
			return payload(req.Query(), n, total), nil
		},
	}
}

func newSession(searcher github.Searcher) *SearchSession {
	return NewSearchSession(searcher, zerolog.Nop(), domain.DefaultSearchCriteria())
}

func resolve(t *testing.T, s *SearchSession, ticket FetchTicket) {
	t.Helper()
	require.True(t, s.Resolve(s.Fetch(context.Background(), ticket)), "outcome for epoch %d was discarded", ticket.Epoch)
}

func TestSearchSession_Start(t *testing.T) {
	searcher := echoSearcher(1000)
	s := newSession(searcher)

	ticket := s.Start()
	require.Equal(t, uint64(1), ticket.Epoch)
	require.NotEmpty(t, ticket.RequestID)
	require.True(t, s.State().IsLoading())

	resolve(t, s, ticket)

	calls := searcher.calls()
	require.Len(t, calls, 1)
	require.Equal(t, "search/repositories?page=1&per_page=28&q=react&sort=created_at", calls[0].URL())

	state := s.State()
	require.Equal(t, domain.StatusSuccess, state.Status())
	result, ok := state.LastResult()
	require.True(t, ok)
	require.Equal(t, 28, result.Len())
	require.Equal(t, 36, result.TotalPages())
	require.Equal(t, "react-1", result.Items()[0].Name())
}

func TestSearchSession_OutOfOrderResponses(t *testing.T) {
	s := newSession(echoSearcher(50))

	stale := s.Search("re", domain.SortStars)
	latest := s.Search("react", domain.SortStars)
	require.Greater(t, latest.Epoch, stale.Epoch)

	staleOutcome := s.Fetch(context.Background(), stale)
	latestOutcome := s.Fetch(context.Background(), latest)

	require.True(t, s.Resolve(latestOutcome))
	require.False(t, s.Resolve(staleOutcome))

	result, ok := s.State().LastResult()
	require.True(t, ok)
	require.Equal(t, "react-1", result.Items()[0].Name())
	require.Equal(t, "react", s.State().Criteria().Text())
}

func TestSearchSession_StaleResponseWhileLoading(t *testing.T) {
	s := newSession(echoSearcher(50))

	first := s.Search("go", domain.SortStars)
	firstOutcome := s.Fetch(context.Background(), first)
	s.Search("rust", domain.SortStars)

	require.False(t, s.Resolve(firstOutcome))
	require.True(t, s.State().IsLoading())
	_, ok := s.State().LastResult()
	require.False(t, ok)
}

func TestSearchSession_ErrorRetainsLastResult(t *testing.T) {
	failing := false
	searcher := &fakeSearcher{
		respond: func(req github.SearchRequest) (*gh.RepositoriesSearchResult, error) {
			if failing {
				return nil, &domain.ResponseError{StatusCode: 503, Message: "Service Unavailable"}
			}
			return payload(req.Query(), 28, 100), nil
		},
	}
	s := newSession(searcher)
	resolve(t, s, s.Start())

	failing = true
	resolve(t, s, s.Refresh())

	state := s.State()
	require.Equal(t, domain.StatusError, state.Status())
	require.Equal(t, domain.ErrorKindResponse, domain.ErrorKindOf(state.LastError()))

	result, ok := state.LastResult()
	require.True(t, ok)
	require.Equal(t, 28, result.Len())

	failing = false
	resolve(t, s, s.Refresh())
	require.Equal(t, domain.StatusSuccess, s.State().Status())
	require.NoError(t, s.State().LastError())
}

func TestSearchSession_StaleErrorIgnored(t *testing.T) {
	calls := 0
	searcher := &fakeSearcher{
		respond: func(req github.SearchRequest) (*gh.RepositoriesSearchResult, error) {
			calls++
			if calls == 1 {
				return nil, &domain.TransportError{Err: errors.New("connection reset")}
			}
			return payload(req.Query(), 5, 5), nil
		},
	}
	s := newSession(searcher)

	first := s.Search("a", domain.SortStars)
	firstOutcome := s.Fetch(context.Background(), first)
	second := s.Search("ab", domain.SortStars)
	resolve(t, s, second)

	require.False(t, s.Resolve(firstOutcome))
	require.Equal(t, domain.StatusSuccess, s.State().Status())
}

func TestSearchSession_NewSearchResetsPage(t *testing.T) {
	s := newSession(echoSearcher(280))
	resolve(t, s, s.Start())

	ticket, ok := s.SelectPage(5)
	require.True(t, ok)
	require.Equal(t, 5, ticket.Criteria.Page())
	resolve(t, s, ticket)
	require.Equal(t, 5, s.State().CurrentPage())

	ticket = s.Search("vue", s.State().Criteria().Sort())
	require.Equal(t, 1, ticket.Criteria.Page())
	require.Equal(t, "vue", ticket.Criteria.Text())
	require.Equal(t, 1, s.State().CurrentPage())
}

func TestSearchSession_SelectPage(t *testing.T) {
	s := newSession(echoSearcher(56))
	resolve(t, s, s.Start())
	require.Equal(t, 2, s.State().TotalPages())

	tests := []struct {
		name     string
		page     int
		wantPage int
		wantOK   bool
	}{
		{"current page is a no-op", 1, 0, false},
		{"below range clamps to current", -3, 0, false},
		{"beyond range clamps to last", 10, 2, true},
		{"last page again is a no-op", 2, 0, false},
		{"back to first", 0, 1, true},
	}

	for _, tt := range tests {
		ticket, ok := s.SelectPage(tt.page)
		require.Equal(t, tt.wantOK, ok, tt.name)
		if !ok {
			continue
		}
		require.Equal(t, tt.wantPage, ticket.Criteria.Page(), tt.name)
		resolve(t, s, ticket)
	}
}

func TestSearchSession_NextPrevPage(t *testing.T) {
	s := newSession(echoSearcher(84))
	resolve(t, s, s.Start())

	_, ok := s.PrevPage()
	require.False(t, ok)

	for want := 2; want <= 3; want++ {
		ticket, ok := s.NextPage()
		require.True(t, ok)
		require.Equal(t, want, ticket.Criteria.Page())
		resolve(t, s, ticket)
	}

	_, ok = s.NextPage()
	require.False(t, ok)

	ticket, ok := s.PrevPage()
	require.True(t, ok)
	require.Equal(t, 2, ticket.Criteria.Page())
}

func TestSearchSession_PageClampedAfterSuccess(t *testing.T) {
	total := 280
	searcher := &fakeSearcher{
		respond: func(req github.SearchRequest) (*gh.RepositoriesSearchResult, error) {
			return payload(req.Query(), 28, total), nil
		},
	}
	s := newSession(searcher)
	resolve(t, s, s.Start())

	ticket, ok := s.SelectPage(8)
	require.True(t, ok)

	total = 56
	resolve(t, s, ticket)
	require.Equal(t, 2, s.State().CurrentPage())
	require.Equal(t, 2, s.State().Criteria().Page())

	refresh := s.Refresh()
	require.Equal(t, 2, refresh.Criteria.Page())
	require.Equal(t, 2, s.State().CurrentPage())
}

func TestSearchSession_ChangeSort(t *testing.T) {
	searcher := echoSearcher(280)
	s := newSession(searcher)
	resolve(t, s, s.Search("tui", domain.SortStars))

	page, ok := s.SelectPage(3)
	require.True(t, ok)
	resolve(t, s, page)

	_, ok = s.ChangeSort(domain.SortStars)
	require.False(t, ok, "unchanged sort must not issue a request")

	_, ok = s.ChangeSort(domain.SortField("forks"))
	require.False(t, ok, "invalid sort must not issue a request")

	ticket, ok := s.ChangeSort(domain.SortUpdated)
	require.True(t, ok)
	require.Equal(t, "tui", ticket.Criteria.Text())
	require.Equal(t, domain.SortUpdated, ticket.Criteria.Sort())
	require.Equal(t, 3, ticket.Criteria.Page())
	resolve(t, s, ticket)

	calls := searcher.calls()
	require.Equal(t, "search/repositories?page=3&per_page=28&q=tui&sort=updated_at", calls[len(calls)-1].URL())
}

func TestSearchSession_EpochsIncrease(t *testing.T) {
	s := newSession(echoSearcher(10))

	var last uint64
	for _, ticket := range []FetchTicket{s.Start(), s.Search("a", domain.SortName), s.Refresh()} {
		require.Greater(t, ticket.Epoch, last)
		last = ticket.Epoch
	}
	require.Equal(t, last, s.State().RequestEpoch())
}
