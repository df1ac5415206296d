package s2

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/paperdex/paperdex/internal/paper"
	"github.com/paperdex/paperdex/internal/similarity"
)

// Source adapts the client to the enrichment pass. DOI lookups are exact;
// records without a DOI fall back to a title search.
type Source struct {
	client *Client
}

// NewSource wraps a client as an enrichment source.
func NewSource(c *Client) *Source {
	return &Source{client: c}
}

// Name identifies the source in enrichment results.
func (s *Source) Name() string { return "s2" }

// Lookup fetches this source's view of a paper. A paper the API does not
// know is (nil, nil), not an error.
func (s *Source) Lookup(ctx context.Context, p paper.Paper) (*paper.Candidate, error) {
	query := p.Title
	if p.DOI != "" {
		query = "doi:" + p.DOI
	}
	if query == "" {
		return nil, nil
	}

	results, err := s.client.SearchPapers(ctx, query, 1, DefaultPaperFields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	cand := MapCandidate(results[0])
	return &cand, nil
}

// maxQueryLen bounds search queries; very long titles trip the API.
const maxQueryLen = 200

// BestMatch searches for a local paper in the S2 index and returns the S2
// paper ID of the best-scoring result at or above the threshold. Results
// are scored with the search weights; ties go to the earlier result. An
// empty ID with a nil error means nothing cleared the threshold.
func (c *Client) BestMatch(ctx context.Context, p paper.Paper, limit int, threshold float64) (string, float64, error) {
	query := p.Title
	if len(query) > maxQueryLen {
		cut := maxQueryLen
		// Walk back to a rune boundary so the query stays valid UTF-8.
		for cut > 0 && !utf8.RuneStart(query[cut]) {
			cut--
		}
		query = query[:cut]
	}

	results, err := c.SearchPapers(ctx, query, limit, SearchFields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", 0, nil
		}
		return "", 0, err
	}

	bestID := ""
	bestScore := 0.0
	for _, r := range results {
		if r.Title == "" {
			continue
		}
		score := similarity.Score(MapCandidate(r), p, similarity.SearchWeights).Total()
		if score > bestScore {
			bestScore = score
			bestID = r.PaperID
		}
	}

	if bestScore < threshold {
		return "", bestScore, nil
	}
	return bestID, bestScore, nil
}
