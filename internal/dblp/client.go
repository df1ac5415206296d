package dblp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/paperdex/paperdex/internal/paper"
)

const (
	// BaseURL is the DBLP publication search endpoint.
	BaseURL = "https://dblp.org/search/publ/api"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestInterval spaces requests to stay friendly to the public API.
	requestInterval = 1500 * time.Millisecond

	// maxHits is the page size requested per query.
	maxHits = 1000
)

// frontMatterKeywords mark proceedings volumes, committee listings and other
// non-paper entries that the search returns alongside actual papers.
var frontMatterKeywords = []string{
	"proceedings", "workshop proceedings", "conference proceedings",
	"call for", "program committee", "organizing committee",
	"table of contents", "author index", "symposium on",
	"conference on", "international conference",
}

// Client is a rate-limited HTTP client for the DBLP search API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithRequestInterval overrides the spacing between requests.
func WithRequestInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(d), 1) }
}

// NewClient creates a DBLP API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one raw query and returns the hits.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?q=%s&format=json&h=%d", c.baseURL, url.QueryEscape(query), maxHits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying dblp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dblp returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding dblp response: %w", err)
	}
	return sr.Result.Hits.Hit, nil
}

// FetchVenueYear fetches the papers of one venue and year. Several query
// strategies are tried in order; the first that yields papers wins. The
// venue argument is the search term and is also matched against each hit's
// venue field to drop results from other venues.
func (c *Client) FetchVenueYear(ctx context.Context, venue string, year int) ([]paper.Paper, error) {
	queries := []string{
		fmt.Sprintf("venue:%s:%d", venue, year),
		fmt.Sprintf("venue:%s %d", venue, year),
		fmt.Sprintf("%s %d", venue, year),
	}

	var lastErr error
	for _, query := range queries {
		hits, err := c.Search(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		papers := collectPapers(hits, venue, year)
		if len(papers) > 0 {
			return papers, nil
		}
	}

	// All strategies empty: report the transport error if every query
	// failed, otherwise a genuinely empty result.
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

// collectPapers filters hits down to actual papers of the requested venue
// and year, deduplicating by DBLP key within the batch.
func collectPapers(hits []Hit, venue string, year int) []paper.Paper {
	seen := make(map[string]bool)
	var papers []paper.Paper

	for _, hit := range hits {
		info := hit.Info

		y, err := strconv.Atoi(info.Year)
		if err != nil || y != year {
			continue
		}
		if info.Title == "" || info.Title == "Untitled" {
			continue
		}
		if isFrontMatter(info.Title) {
			continue
		}
		if !venueMatches(info, venue) {
			continue
		}

		p := mapHit(hit, venue)
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		papers = append(papers, p)
	}

	return papers
}

// isFrontMatter reports whether a title looks like a proceedings volume or
// other conference front matter. Short titles carrying a keyword may still
// be real papers ("A Symposium on X considered harmful") and are kept.
func isFrontMatter(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range frontMatterKeywords {
		if strings.Contains(lower, kw) {
			return len(title) > 100
		}
	}
	return false
}

// venueMatches checks the hit's venue or booktitle against the search term.
// "SC" would substring-match almost anything, so it gets a stricter rule.
func venueMatches(info Info, venue string) bool {
	hitVenue := strings.ToLower(info.Venue)
	if hitVenue == "" {
		hitVenue = strings.ToLower(info.BookTitle)
	}
	term := strings.ToLower(venue)

	if term == "sc" {
		return strings.Contains(hitVenue, "supercomputing") || strings.Contains(hitVenue, "sc conference")
	}
	return strings.Contains(hitVenue, term)
}
