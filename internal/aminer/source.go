package aminer

import (
	"context"
	"errors"

	"github.com/paperdex/paperdex/internal/paper"
)

// Source adapts the AMiner client into an enrichment source. AMiner has
// no title search, so lookups go through the DOI; papers without one are
// reported as not found.
type Source struct {
	client *Client
}

// NewSource wraps an AMiner client as an enrichment source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// Name implements enrich.Source.
func (s *Source) Name() string { return "aminer" }

// Lookup implements enrich.Source.
func (s *Source) Lookup(ctx context.Context, p paper.Paper) (*paper.Candidate, error) {
	if p.DOI == "" {
		return nil, nil
	}
	rec, err := s.client.PaperByDOI(ctx, p.DOI)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cand := MapCandidate(rec)
	return &cand, nil
}
