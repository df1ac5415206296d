package s2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Semantic Scholar Academic Graph API base URL.
	BaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestInterval respects the unauthenticated limit of roughly 100
	// requests per minute.
	requestInterval = 600 * time.Millisecond

	// DefaultPaperFields are the fields requested for paper lookups.
	DefaultPaperFields = "title,abstract,citationCount,year,venue,url,authors,authors.affiliations,references,externalIds"

	// SearchFields are the lighter fields requested when scoring search
	// results.
	SearchFields = "title,year,authors,externalIds"

	// referenceFields are the fields requested per reference entry.
	referenceFields = "references.paperId,references.title,references.year,references.url,references.authors"
)

// Client is a rate-limited HTTP client for the Semantic Scholar API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

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

// NewClient creates a Semantic Scholar API client. The S2_API_KEY
// environment variable supplies the key when set.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		baseURL:    BaseURL,
	}

	if key := os.Getenv("S2_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchPapers searches by free-text query and returns up to limit papers.
func (c *Client) SearchPapers(ctx context.Context, query string, limit int, fields string) ([]S2Paper, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", fields)

	var sr searchResponse
	if err := c.get(ctx, "/paper/search?"+params.Encode(), &sr); err != nil {
		return nil, err
	}
	return sr.Data, nil
}

// PaperReferences fetches the reference list of a paper by its S2 ID.
func (c *Client) PaperReferences(ctx context.Context, paperID string) ([]S2RefStub, error) {
	params := url.Values{}
	params.Set("fields", referenceFields)

	var rr referencesResponse
	if err := c.get(ctx, "/paper/"+url.PathEscape(paperID)+"?"+params.Encode(), &rr); err != nil {
		return nil, err
	}
	return rr.References, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("querying semantic scholar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("semantic scholar returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding semantic scholar response: %w", err)
	}
	return nil
}
