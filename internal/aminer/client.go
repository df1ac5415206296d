package aminer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the AMiner open-platform API root.
	BaseURL = "https://openapi.aminer.cn/api"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// requestInterval spaces successive API calls.
	requestInterval = 1 * time.Second
)

// ErrNotFound is returned when AMiner has no record for the requested ID.
var ErrNotFound = errors.New("aminer: paper not found")

// ErrNoCredentials is returned when the client is constructed without an
// API key or user ID.
var ErrNoCredentials = errors.New("aminer: missing API key or user ID")

// Client talks to the AMiner open-platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userID     string
	tokenTTL   time.Duration
	limiter    *rate.Limiter
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCredentials sets the API key and user ID explicitly instead of
// reading them from the environment.
func WithCredentials(apiKey, userID string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
		c.userID = userID
	}
}

// WithRequestInterval overrides the pacing between API calls.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(d), 1) }
}

// NewClient builds an AMiner client. Credentials default to the
// AMINER_API_KEY and AMINER_USER_ID environment variables.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		apiKey:     os.Getenv("AMINER_API_KEY"),
		userID:     os.Getenv("AMINER_USER_ID"),
		tokenTTL:   DefaultTokenTTL,
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCredentials reports whether the client holds both pieces of the
// credential pair.
func (c *Client) HasCredentials() bool {
	return c.apiKey != "" && c.userID != ""
}

// PaperDetail fetches the full AMiner record for a paper ID.
func (c *Client) PaperDetail(ctx context.Context, id string) (*Paper, error) {
	return c.detail(ctx, "id", id)
}

// PaperByDOI fetches the AMiner record matching a DOI.
func (c *Client) PaperByDOI(ctx context.Context, doi string) (*Paper, error) {
	return c.detail(ctx, "doi", doi)
}

func (c *Client) detail(ctx context.Context, param, value string) (*Paper, error) {
	if !c.HasCredentials() {
		return nil, ErrNoCredentials
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token, err := signToken(c.apiKey, c.userID, c.now(), c.tokenTTL)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/paper/detail?%s=%s", c.baseURL, param, url.QueryEscape(value))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching paper detail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("aminer API returned status %d: %s", resp.StatusCode, string(body))
	}

	var dr detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !dr.Success && dr.Code != 0 && dr.Code != http.StatusOK {
		return nil, fmt.Errorf("aminer API error code %d: %s", dr.Code, dr.Message)
	}
	if len(dr.Data) == 0 {
		return nil, ErrNotFound
	}
	return &dr.Data[0], nil
}
