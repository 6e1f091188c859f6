package domain

// Status is the fetch lifecycle state of a browsing session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// SessionState is the complete state of a browsing session.
//
// It is a value: every transition returns a new SessionState and leaves the
// receiver untouched. Only the latest issued epoch may complete a fetch.
type SessionState struct {
	criteria     SearchCriteria
	lastResult   *QueryResult
	status       Status
	currentPage  int
	requestEpoch uint64
	lastErr      error
}

// NewSessionState creates the state a session starts with.
func NewSessionState(criteria SearchCriteria) SessionState {
	return SessionState{
		criteria:    criteria,
		status:      StatusIdle,
		currentPage: 1,
	}
}

// Criteria returns the criteria of the latest issued request.
func (s SessionState) Criteria() SearchCriteria {
	return s.criteria
}

// LastResult returns the last successfully loaded page, if any.
func (s SessionState) LastResult() (QueryResult, bool) {
	if s.lastResult == nil {
		return QueryResult{}, false
	}
	return *s.lastResult, true
}

// Status returns the lifecycle status.
func (s SessionState) Status() Status {
	return s.status
}

// CurrentPage returns the page being shown or requested.
func (s SessionState) CurrentPage() int {
	return s.currentPage
}

// RequestEpoch returns the epoch of the latest issued request.
func (s SessionState) RequestEpoch() uint64 {
	return s.requestEpoch
}

// LastError returns the error of the last failed fetch while in StatusError.
func (s SessionState) LastError() error {
	return s.lastErr
}

// TotalPages returns the page count of the last loaded result, or 0.
func (s SessionState) TotalPages() int {
	if s.lastResult == nil {
		return 0
	}
	return s.lastResult.TotalPages()
}

// IsLoading reports whether a fetch is outstanding.
func (s SessionState) IsLoading() bool {
	return s.status == StatusLoading
}

// ClampPage bounds page to [1, max(TotalPages, 1)].
func (s SessionState) ClampPage(page int) int {
	upper := s.TotalPages()
	if upper < 1 {
		upper = 1
	}
	if page > upper {
		page = upper
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Begin issues a new request for criteria. The returned state is Loading and
// carries a fresh epoch; the previous result stays available for display.
func (s SessionState) Begin(criteria SearchCriteria) SessionState {
	next := s
	next.criteria = criteria
	next.status = StatusLoading
	next.currentPage = criteria.Page()
	next.requestEpoch = s.requestEpoch + 1
	next.lastErr = nil
	return next
}

// Succeed completes the request identified by epoch with result.
// A stale epoch leaves the state unchanged and returns false.
func (s SessionState) Succeed(epoch uint64, result QueryResult) (SessionState, bool) {
	if epoch != s.requestEpoch || s.status != StatusLoading {
		return s, false
	}
	next := s
	next.status = StatusSuccess
	next.lastResult = &result
	next.lastErr = nil
	next.currentPage = next.ClampPage(s.currentPage)
	next.criteria = s.criteria.WithPage(next.currentPage)
	return next, true
}

// Fail completes the request identified by epoch with err.
// The last good result is retained so it can stay on screen.
func (s SessionState) Fail(epoch uint64, err error) (SessionState, bool) {
	if epoch != s.requestEpoch || s.status != StatusLoading {
		return s, false
	}
	next := s
	next.status = StatusError
	next.lastErr = err
	return next, true
}
