package resolve

import (
	"testing"

	"github.com/paperdex/paperdex/internal/paper"
	"github.com/paperdex/paperdex/internal/similarity"
)

func systemsCollection() []paper.Paper {
	return []paper.Paper{
		{
			ID:      "spanner-2012",
			Title:   "Spanner: Google's Globally-Distributed Database",
			Year:    2012,
			Authors: []paper.Author{{Name: "J. Corbett"}},
		},
		{
			ID:      "raft-2014",
			Title:   "In Search of an Understandable Consensus Algorithm",
			Year:    2014,
			Authors: []paper.Author{{Name: "Diego Ongaro"}, {Name: "John Ousterhout"}},
		},
		{
			ID:      "dynamo-2007",
			Title:   "Dynamo: Amazon's Highly Available Key-value Store",
			Year:    2007,
			Authors: []paper.Author{{Name: "Giuseppe DeCandia"}},
		},
	}
}

func TestResolveSpannerScenario(t *testing.T) {
	c := paper.Candidate{
		Title:   "Spanner Google's Globally Distributed Database",
		Year:    2012,
		Authors: []paper.Author{{Name: "J. Corbett"}, {Name: "M. Dean"}},
	}

	got := NewReference().Resolve(c, systemsCollection())
	if !got.Matched {
		t.Fatalf("expected a match, got %+v", got)
	}
	if got.PaperID != "spanner-2012" {
		t.Errorf("PaperID = %q, want spanner-2012", got.PaperID)
	}
	if got.Breakdown.Title < 0.9 {
		t.Errorf("title component = %v, want near 1.0", got.Breakdown.Title)
	}
	if got.Breakdown.Year == 0 {
		t.Error("expected year bonus for matching 2012")
	}
	if got.Breakdown.Authors == 0 {
		t.Error("expected author-overlap bonus for shared J. Corbett")
	}
}

func TestResolveUnrelatedNoMatch(t *testing.T) {
	c := paper.Candidate{Title: "Unrelated Paper On Compilers", Year: 2019}

	got := NewReference().Resolve(c, systemsCollection())
	if got.Matched {
		t.Fatalf("expected no match, got paper %q with score %v", got.PaperID, got.Score)
	}
	if got.PaperID != "" || got.Index != -1 {
		t.Errorf("no-match result should carry no paper, got %+v", got)
	}
}

func TestResolveThresholdBoundary(t *testing.T) {
	// "abcd" vs "bcde" has a title ratio of exactly 0.75 and no bonuses.
	papers := []paper.Paper{{ID: "p1", Title: "bcde"}}
	c := paper.Candidate{Title: "abcd"}

	atThreshold := New(similarity.DefaultWeights, 0.75).Resolve(c, papers)
	if !atThreshold.Matched {
		t.Errorf("score exactly at threshold should be accepted, got %+v", atThreshold)
	}

	aboveThreshold := New(similarity.DefaultWeights, 0.7501).Resolve(c, papers)
	if aboveThreshold.Matched {
		t.Errorf("score below threshold should be rejected, got %+v", aboveThreshold)
	}
}

func TestResolveFirstSeenWinsOnTie(t *testing.T) {
	papers := []paper.Paper{
		{ID: "first", Title: "An Identical Title"},
		{ID: "second", Title: "An Identical Title"},
	}
	c := paper.Candidate{Title: "An Identical Title"}

	got := NewReference().Resolve(c, papers)
	if !got.Matched || got.PaperID != "first" {
		t.Errorf("tie should go to the first-seen paper, got %+v", got)
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	r := NewSearch()

	if got := r.Resolve(paper.Candidate{}, systemsCollection()); got.Matched {
		t.Errorf("candidate without title should never match, got %+v", got)
	}
	if got := r.Resolve(paper.Candidate{Title: "Anything"}, nil); got.Matched {
		t.Errorf("empty collection should return no match, got %+v", got)
	}
}

func TestResolverThresholds(t *testing.T) {
	if got := NewSearch().Threshold(); got != SearchThreshold {
		t.Errorf("search threshold = %v, want %v", got, SearchThreshold)
	}
	if got := NewReference().Threshold(); got != ReferenceThreshold {
		t.Errorf("reference threshold = %v, want %v", got, ReferenceThreshold)
	}
}
