// Package scraper extracts abstracts, keywords and author affiliations
// from publisher landing pages. It understands the ACM Digital Library
// and IEEE Xplore layouts; other hosts are skipped.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/paperdex/paperdex/internal/paper"
)

const (
	// DefaultTimeout is the per-page HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// requestInterval spaces successive page fetches. Publisher sites
	// rate-limit aggressively, so this is deliberately slow.
	requestInterval = 3 * time.Second

	// minAbstractLen guards against picking up a stray caption or nav
	// fragment instead of the real abstract.
	minAbstractLen = 50

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client fetches and parses publisher landing pages.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestInterval overrides the pacing between page fetches.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(d), 1) }
}

// NewClient builds a scraper client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scrape fetches the page at pageURL and extracts whatever bibliographic
// fields the layout exposes. Unsupported hosts return (nil, nil).
func (c *Client) Scrape(ctx context.Context, pageURL string) (*paper.Candidate, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing page URL: %w", err)
	}

	var extract func(*goquery.Document) paper.Candidate
	switch {
	case strings.Contains(u.Host, "dl.acm.org"):
		extract = extractACM
	case strings.Contains(u.Host, "ieeexplore.ieee.org"):
		extract = extractIEEE
	default:
		return nil, nil
	}

	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	cand := extract(doc)
	cand.Source = "scraper"
	if cand.Abstract == "" && len(cand.Keywords) == 0 && len(cand.Authors) == 0 {
		return nil, nil
	}
	return &cand, nil
}

func (c *Client) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// Publisher sites serve a stripped page (or a block page) to
	// clients that do not look like a browser.
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}

// extractACM handles the ACM Digital Library paper layout.
func extractACM(doc *goquery.Document) paper.Candidate {
	var cand paper.Candidate

	for _, sel := range []string{
		"div.abstractSection p",
		"section#abstract div[role='paragraph']",
		"div.abstractInFull p",
	} {
		if text := collapseText(doc.Find(sel).First().Text()); len(text) >= minAbstractLen {
			cand.Abstract = text
			break
		}
	}

	doc.Find("div.tags-widget a, ol.rlist.organizational-chart a").Each(func(_ int, s *goquery.Selection) {
		if kw := collapseText(s.Text()); kw != "" {
			cand.Keywords = appendUnique(cand.Keywords, kw)
		}
	})

	doc.Find("div.author-info, li.loa__item").Each(func(_ int, s *goquery.Selection) {
		name := collapseText(s.Find("a.author-name, span.loa__author-name").First().Text())
		if name == "" {
			name = collapseText(s.AttrOr("title", ""))
		}
		if name == "" {
			return
		}
		author := paper.Author{Name: name}
		if aff := collapseText(s.Find("span.loa_author_inst, div.author-affiliation").First().Text()); aff != "" {
			author.Affiliations = []string{aff}
		}
		cand.Authors = append(cand.Authors, author)
	})

	return cand
}

// extractIEEE handles the IEEE Xplore paper layout.
func extractIEEE(doc *goquery.Document) paper.Candidate {
	var cand paper.Candidate

	for _, sel := range []string{
		"div.abstract-text div.u-mb-1",
		"meta[property='og:description']",
	} {
		var text string
		node := doc.Find(sel).First()
		if strings.HasPrefix(sel, "meta") {
			text = node.AttrOr("content", "")
		} else {
			text = node.Text()
		}
		text = strings.TrimPrefix(collapseText(text), "Abstract: ")
		if len(text) >= minAbstractLen {
			cand.Abstract = text
			break
		}
	}

	doc.Find("ul.doc-keywords-list li.doc-keywords-list-item a.stats-keywords-list-item").Each(func(_ int, s *goquery.Selection) {
		if kw := collapseText(s.Text()); kw != "" {
			cand.Keywords = appendUnique(cand.Keywords, kw)
		}
	})

	doc.Find("div.authors-info span.authors-info-item").Each(func(_ int, s *goquery.Selection) {
		name := collapseText(s.Find("a span").First().Text())
		if name == "" {
			return
		}
		author := paper.Author{Name: name}
		if aff := collapseText(s.Find("span.author-affiliation").First().Text()); aff != "" {
			author.Affiliations = []string{aff}
		}
		cand.Authors = append(cand.Authors, author)
	})

	return cand
}

func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if strings.EqualFold(have, s) {
			return list
		}
	}
	return append(list, s)
}
