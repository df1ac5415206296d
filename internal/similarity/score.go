package similarity

import (
	"strings"

	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// Weights configure the bonus terms added to the title ratio.
type Weights struct {
	Year    float64 // Added when both records carry the same year
	Authors float64 // Scaled by the fraction of shared author names
}

// DefaultWeights are used when matching an external reference entry back
// into the local collection.
var DefaultWeights = Weights{Year: 0.15, Authors: 0.15}

// SearchWeights are used when resolving a local paper against an external
// source's search results, where author lists are often truncated.
var SearchWeights = Weights{Year: 0.15, Authors: 0.10}

// Breakdown records how much each factor contributed to a composite score.
type Breakdown struct {
	Title   float64 `json:"title"`             // Normalized-title ratio, [0, 1]
	Year    float64 `json:"year,omitempty"`    // Year bonus, 0 or Weights.Year
	Authors float64 `json:"authors,omitempty"` // Author-overlap bonus
}

// Total is the composite score. Bonuses are additive, so the total may
// exceed 1.0; it is only used for ranking.
func (b Breakdown) Total() float64 {
	return b.Title + b.Year + b.Authors
}

// Score computes the composite similarity between a candidate and a
// canonical paper under the given weights.
func Score(c paper.Candidate, p paper.Paper, w Weights) Breakdown {
	var b Breakdown
	b.Title = Ratio(normalize.Title(c.Title), normalize.Title(p.Title))

	if c.Year != 0 && p.Year != 0 && c.Year == p.Year {
		b.Year = w.Year
	}

	b.Authors = authorOverlap(c.AuthorNames(), p.AuthorNames()) * w.Authors
	return b
}

// authorOverlap returns the fraction of author names shared between the two
// sets, relative to the larger set. Names are compared case-insensitively
// after disambiguation suffixes are stripped.
func authorOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, name := range a {
		if key := authorKey(name); key != "" {
			set[key] = true
		}
	}

	shared := 0
	seen := make(map[string]bool, len(b))
	for _, name := range b {
		key := authorKey(name)
		if key != "" && set[key] && !seen[key] {
			seen[key] = true
			shared++
		}
	}
	if shared == 0 {
		return 0
	}

	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	return float64(shared) / float64(denom)
}

func authorKey(name string) string {
	return strings.ToLower(strings.TrimSpace(normalize.AuthorName(name)))
}
