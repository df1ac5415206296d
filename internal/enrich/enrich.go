// Package enrich runs sequential enrichment passes over the canonical
// collection. One candidate is fully merged before the next record is
// considered; there is no concurrent mutation of the collection.
package enrich

import (
	"context"

	"github.com/paperdex/paperdex/internal/merge"
	"github.com/paperdex/paperdex/internal/paper"
)

// Source supplies one external view of a paper. Implementations own their
// transport, pagination, and rate limiting; a lookup that finds nothing
// returns (nil, nil) and is not an error.
type Source interface {
	Name() string
	Lookup(ctx context.Context, p paper.Paper) (*paper.Candidate, error)
}

// Options bound an enrichment pass. A pass interrupted externally can be
// resumed by re-running with Offset set to the last processed index.
type Options struct {
	Offset int // Index to start from; negative values start at 0
	Limit  int // Maximum records to process; 0 means all
}

// RecordError attributes a failure to one record. Failures never abort the
// pass; the record is left unchanged and the pass moves on.
type RecordError struct {
	Index   int    `json:"index"`
	PaperID string `json:"paper_id"`
	Message string `json:"error"`
}

// Result summarizes an enrichment pass.
type Result struct {
	Source    string        `json:"source"`
	Processed int           `json:"processed"`
	Enriched  int           `json:"enriched"`
	Unchanged int           `json:"unchanged"`
	NotFound  int           `json:"not_found"`
	Failed    int           `json:"failed"`
	Errors    []RecordError `json:"errors,omitempty"`
}

// Run walks papers[opts.Offset:] in order, looks each record up in the
// source, and merges whatever comes back. Each record gets at most one
// lookup and one merge attempt per pass. Run stops early only when ctx is
// cancelled, returning the partial result.
func Run(ctx context.Context, papers []paper.Paper, src Source, merger *merge.Merger, opts Options) Result {
	result := Result{Source: src.Name()}

	start := opts.Offset
	if start < 0 {
		start = 0
	}
	end := len(papers)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	for i := start; i < end && i < len(papers); i++ {
		if ctx.Err() != nil {
			break
		}
		result.Processed++

		cand, err := src.Lookup(ctx, papers[i])
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RecordError{
				Index:   i,
				PaperID: papers[i].ID,
				Message: err.Error(),
			})
			continue
		}
		if cand == nil {
			result.NotFound++
			continue
		}

		if merger.Apply(&papers[i], *cand) {
			result.Enriched++
		} else {
			result.Unchanged++
		}
	}

	return result
}

// NeedsEnrichment reports whether a record is missing any of the fields an
// enrichment pass can supply. Complete records can be skipped to save
// lookups against rate-limited sources.
func NeedsEnrichment(p paper.Paper) bool {
	if p.Abstract == "" || len(p.Keywords) == 0 || p.Citations == 0 || len(p.References) == 0 {
		return true
	}
	for _, a := range p.Authors {
		if len(a.Affiliations) == 0 {
			return true
		}
	}
	return false
}
