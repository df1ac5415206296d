package scraper

import (
	"context"

	"github.com/paperdex/paperdex/internal/paper"
)

// Source adapts the scraper into an enrichment source. Papers without a
// URL, and papers hosted somewhere we cannot parse, are reported as not
// found rather than errors.
type Source struct {
	client *Client
}

// NewSource wraps a scraper client as an enrichment source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// Name implements enrich.Source.
func (s *Source) Name() string { return "scraper" }

// Lookup implements enrich.Source.
func (s *Source) Lookup(ctx context.Context, p paper.Paper) (*paper.Candidate, error) {
	if p.URL == "" {
		return nil, nil
	}
	return s.client.Scrape(ctx, p.URL)
}
