// Package dedupe collapses freshly fetched records into a unique set.
package dedupe

import (
	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// Key returns the canonical deduplication key for a paper: its DOI when
// present, otherwise its normalized title.
func Key(p paper.Paper) string {
	if p.DOI != "" {
		return p.DOI
	}
	return normalize.Title(p.Title)
}

// Papers removes duplicate records, keeping the first occurrence of each
// key and preserving first-seen order. Which duplicate carries richer data
// is not considered; the first record wins outright.
func Papers(papers []paper.Paper) []paper.Paper {
	seen := make(map[string]bool, len(papers))
	unique := make([]paper.Paper, 0, len(papers))

	for _, p := range papers {
		key := Key(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}

	return unique
}

// Report pairs the surviving papers with the count of records dropped.
type Report struct {
	Unique  []paper.Paper
	Dropped int
}

// WithReport runs Papers and reports how many records were dropped.
func WithReport(papers []paper.Paper) Report {
	unique := Papers(papers)
	return Report{Unique: unique, Dropped: len(papers) - len(unique)}
}
