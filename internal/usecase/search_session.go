package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/repobrowser/internal/adapter/github"
	"github.com/yourusername/repobrowser/internal/domain"
)

// FetchTicket identifies one issued request. Only the ticket carrying the
// session's latest epoch can change what the session displays.
type FetchTicket struct {
	Epoch     uint64
	Criteria  domain.SearchCriteria
	RequestID string
}

// FetchOutcome is the completed fetch for a ticket: either Result or Err is set.
type FetchOutcome struct {
	Ticket FetchTicket
	Result *domain.QueryResult
	Err    error
}

// SearchSession owns the browsing state and turns user intents into requests.
//
// SearchSession is not safe for concurrent use. Its state is meant to be owned
// by a single control loop; Fetch is the only method that may run elsewhere,
// and it never touches the state.
type SearchSession struct {
	searcher     github.Searcher
	state        domain.SessionState
	log          zerolog.Logger
	newRequestID func() string
}

// NewSearchSession creates an idle session for initial.
func NewSearchSession(searcher github.Searcher, log zerolog.Logger, initial domain.SearchCriteria) *SearchSession {
	return &SearchSession{
		searcher:     searcher,
		state:        domain.NewSessionState(initial),
		log:          log.With().Str("component", "session").Logger(),
		newRequestID: uuid.NewString,
	}
}

// State returns a snapshot of the session state.
func (s *SearchSession) State() domain.SessionState {
	return s.state
}

// Start issues the initial request for the session's criteria.
func (s *SearchSession) Start() FetchTicket {
	return s.begin(s.state.Criteria(), "start")
}

// Search issues a fresh query for text with sort, starting at page 1.
func (s *SearchSession) Search(text string, sort domain.SortField) FetchTicket {
	criteria := s.state.Criteria().WithText(text).WithSort(sort)
	return s.begin(criteria, "search")
}

// ChangeSort re-issues the current query ordered by sort. Text and page are
// kept. Returns false when sort is invalid or already active.
func (s *SearchSession) ChangeSort(sort domain.SortField) (FetchTicket, bool) {
	if !sort.IsValid() || sort == s.state.Criteria().Sort() {
		return FetchTicket{}, false
	}
	return s.begin(s.state.Criteria().WithSort(sort), "sort"), true
}

// SelectPage requests page, clamped to the known page range. Returns false
// when the clamped page is the one already shown or requested.
func (s *SearchSession) SelectPage(page int) (FetchTicket, bool) {
	page = s.state.ClampPage(page)
	if page == s.state.CurrentPage() {
		return FetchTicket{}, false
	}
	return s.begin(s.state.Criteria().WithPage(page), "page"), true
}

// NextPage requests the page after the current one.
func (s *SearchSession) NextPage() (FetchTicket, bool) {
	return s.SelectPage(s.state.CurrentPage() + 1)
}

// PrevPage requests the page before the current one.
func (s *SearchSession) PrevPage() (FetchTicket, bool) {
	return s.SelectPage(s.state.CurrentPage() - 1)
}

// Refresh re-issues the current request unchanged.
func (s *SearchSession) Refresh() FetchTicket {
	return s.begin(s.state.Criteria(), "refresh")
}

func (s *SearchSession) begin(criteria domain.SearchCriteria, reason string) FetchTicket {
	s.state = s.state.Begin(criteria)
	ticket := FetchTicket{
		Epoch:     s.state.RequestEpoch(),
		Criteria:  criteria,
		RequestID: s.newRequestID(),
	}

	s.log.Debug().
		Str("request_id", ticket.RequestID).
		Uint64("epoch", ticket.Epoch).
		Str("reason", reason).
		Str("query", criteria.Text()).
		Str("sort", criteria.Sort().String()).
		Int("page", criteria.Page()).
		Msg("request issued")

	return ticket
}

// Fetch performs the request described by ticket. It does not modify the
// session and may run on any goroutine.
func (s *SearchSession) Fetch(ctx context.Context, ticket FetchTicket) FetchOutcome {
	req := github.FromCriteria(ticket.Criteria)

	raw, err := s.searcher.SearchRepositories(ctx, req)
	if err != nil {
		return FetchOutcome{Ticket: ticket, Err: err}
	}

	result, err := normalizeSearchResult(raw, ticket.Criteria.PageSize())
	if err != nil {
		return FetchOutcome{Ticket: ticket, Err: err}
	}

	return FetchOutcome{Ticket: ticket, Result: &result}
}

// Resolve applies a completed fetch. Outcomes of superseded requests are
// discarded; Resolve reports whether the state changed.
func (s *SearchSession) Resolve(outcome FetchOutcome) bool {
	logger := s.log.With().
		Str("request_id", outcome.Ticket.RequestID).
		Uint64("epoch", outcome.Ticket.Epoch).
		Logger()

	var (
		next    domain.SessionState
		applied bool
	)
	switch {
	case outcome.Err != nil:
		next, applied = s.state.Fail(outcome.Ticket.Epoch, outcome.Err)
	case outcome.Result != nil:
		next, applied = s.state.Succeed(outcome.Ticket.Epoch, *outcome.Result)
	default:
		next, applied = s.state.Fail(outcome.Ticket.Epoch, &domain.MalformedPayloadError{Reason: "empty outcome"})
	}

	if !applied {
		logger.Debug().
			Uint64("current_epoch", s.state.RequestEpoch()).
			Msg("stale response discarded")
		return false
	}
	s.state = next

	if err := next.LastError(); err != nil {
		event := logger.Warn().
			Err(err).
			Str("kind", domain.ErrorKindOf(err).String())
		var respErr *domain.ResponseError
		if errors.As(err, &respErr) {
			event = event.Int("status", respErr.StatusCode).Bool("rate_limited", respErr.RateLimited)
		}
		event.Msg("search failed")
		return true
	}

	logger.Info().
		Int("items", outcome.Result.Len()).
		Int("total_count", outcome.Result.TotalCount()).
		Int("page", next.CurrentPage()).
		Msg("search succeeded")
	return true
}
