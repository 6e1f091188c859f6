package github

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yourusername/repobrowser/internal/domain"
)

// SearchEndpoint is the repository search path relative to the API base URL.
const SearchEndpoint = "search/repositories"

// SearchRequest fully describes one call to the search endpoint.
type SearchRequest struct {
	Endpoint string
	Params   url.Values
}

// BuildSearchRequest maps search inputs to a request descriptor.
// Blank text is replaced by domain.DefaultSearchTerm. page and pageSize must be
// positive; that is the caller's contract.
func BuildSearchRequest(text string, sort domain.SortField, page, pageSize int) SearchRequest {
	q := strings.TrimSpace(text)
	if q == "" {
		q = domain.DefaultSearchTerm
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("sort", string(sort))
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(pageSize))

	return SearchRequest{
		Endpoint: SearchEndpoint,
		Params:   params,
	}
}

// FromCriteria builds the request for c.
func FromCriteria(c domain.SearchCriteria) SearchRequest {
	return BuildSearchRequest(c.Text(), c.Sort(), c.Page(), c.PageSize())
}

// URL returns the endpoint with its encoded query string. Keys are sorted, so
// equal requests always produce equal URLs.
func (r SearchRequest) URL() string {
	if len(r.Params) == 0 {
		return r.Endpoint
	}
	return r.Endpoint + "?" + r.Params.Encode()
}

// Query returns the effective search term.
func (r SearchRequest) Query() string {
	return r.Params.Get("q")
}

// PageSize returns the per_page parameter, or 0 if absent.
func (r SearchRequest) PageSize() int {
	n, err := strconv.Atoi(r.Params.Get("per_page"))
	if err != nil {
		return 0
	}
	return n
}
