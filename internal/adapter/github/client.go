package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v73/github"

	"github.com/yourusername/repobrowser/internal/domain"
)

// Searcher executes repository searches and returns the raw API payload.
type Searcher interface {
	SearchRepositories(ctx context.Context, req SearchRequest) (*gh.RepositoriesSearchResult, error)
}

// ClientConfig contains configuration for creating a Client.
type ClientConfig struct {
	BaseURL    string       // Optional custom base URL (GitHub Enterprise, tests)
	UserAgent  string       // Optional User-Agent header
	HTTPClient *http.Client // Optional transport; nil uses http.DefaultClient
}

// Client implements Searcher on top of go-github.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new search client. No request timeout is applied beyond
// whatever the supplied transport enforces.
func NewClient(cfg ClientConfig) (*Client, error) {
	client := gh.NewClient(cfg.HTTPClient)

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}

	return &Client{gh: client}, nil
}

// SearchRepositories performs GET {base}/search/repositories with req's parameters.
// Failures are returned as domain.TransportError, domain.ResponseError or
// domain.MalformedPayloadError.
func (c *Client) SearchRepositories(ctx context.Context, req SearchRequest) (*gh.RepositoriesSearchResult, error) {
	httpReq, err := c.gh.NewRequest(http.MethodGet, req.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var result gh.RepositoriesSearchResult
	if _, err := c.gh.Do(ctx, httpReq, &result); err != nil {
		return nil, classifyError(err)
	}

	return &result, nil
}

// classifyError maps go-github and transport errors onto the domain taxonomy.
func classifyError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.ResponseError{
			StatusCode:  statusOf(rateErr.Response),
			Message:     rateErr.Message,
			RateLimited: true,
			Err:         err,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &domain.ResponseError{
			StatusCode:  statusOf(abuseErr.Response),
			Message:     abuseErr.Message,
			RateLimited: true,
			Err:         err,
		}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return &domain.ResponseError{
			StatusCode:  statusOf(respErr.Response),
			Message:     respErr.Message,
			RateLimited: statusOf(respErr.Response) == http.StatusTooManyRequests,
			Err:         err,
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &domain.MalformedPayloadError{Reason: "decode response body", Err: err}
	}

	return &domain.TransportError{Err: err}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
