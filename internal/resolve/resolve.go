// Package resolve matches external candidate records against the local
// paper collection.
package resolve

import (
	"github.com/paperdex/paperdex/internal/paper"
	"github.com/paperdex/paperdex/internal/similarity"
)

// Acceptance thresholds. The stricter reference threshold reflects the
// higher cost of a false-positive citation link compared to a missed
// search hit.
const (
	// SearchThreshold accepts matches when resolving a local paper
	// against an external source's own search index.
	SearchThreshold = 0.60

	// ReferenceThreshold accepts matches when linking an external
	// reference entry back into the local collection.
	ReferenceThreshold = 0.65
)

// MatchResult reports the outcome of resolving one candidate. When no local
// paper clears the threshold, Matched is false and PaperID is empty; that is
// a normal result, not an error.
type MatchResult struct {
	Matched   bool                 `json:"matched"`
	PaperID   string               `json:"paper_id,omitempty"`
	Index     int                  `json:"-"` // Position of the match in the scanned slice, -1 if none
	Score     float64              `json:"score"`
	Breakdown similarity.Breakdown `json:"breakdown"`
}

// Resolver finds the best local match for a candidate. Construct with New;
// weights and threshold are explicit so both resolution contexts (search
// and reference linking) share one implementation.
type Resolver struct {
	weights   similarity.Weights
	threshold float64
}

// New returns a Resolver with the given scoring weights and acceptance
// threshold.
func New(weights similarity.Weights, threshold float64) *Resolver {
	return &Resolver{weights: weights, threshold: threshold}
}

// NewSearch returns a Resolver tuned for matching against external search
// results.
func NewSearch() *Resolver {
	return New(similarity.SearchWeights, SearchThreshold)
}

// NewReference returns a Resolver tuned for linking reference entries into
// the local collection.
func NewReference() *Resolver {
	return New(similarity.DefaultWeights, ReferenceThreshold)
}

// Threshold reports the resolver's acceptance threshold.
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// Resolve scans the collection in slice order and returns the best-scoring
// paper at or above the threshold. Ties are broken by encounter order: a
// later paper must strictly beat the current best to replace it, so given
// identical inputs the result is deterministic.
func (r *Resolver) Resolve(c paper.Candidate, papers []paper.Paper) MatchResult {
	best := MatchResult{Index: -1}
	if c.Title == "" {
		return best
	}

	for i := range papers {
		b := similarity.Score(c, papers[i], r.weights)
		if total := b.Total(); total > best.Score {
			best.Score = total
			best.Breakdown = b
			best.Index = i
		}
	}

	if best.Index >= 0 && best.Score >= r.threshold {
		best.Matched = true
		best.PaperID = papers[best.Index].ID
	} else {
		best.Index = -1
	}

	return best
}
