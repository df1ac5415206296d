package dedupe

import (
	"testing"

	"github.com/paperdex/paperdex/internal/paper"
)

func TestPapersSharedDOI(t *testing.T) {
	papers := []paper.Paper{
		{ID: "a", Title: "First Record", DOI: "10.1145/1234"},
		{ID: "b", Title: "Completely Different Title", DOI: "10.1145/1234"},
	}

	got := Papers(papers)
	if len(got) != 1 {
		t.Fatalf("got %d papers, want 1", len(got))
	}
	if got[0].ID != "a" {
		t.Errorf("survivor = %q, want first-seen %q", got[0].ID, "a")
	}
}

func TestPapersSameNormalizedTitle(t *testing.T) {
	papers := []paper.Paper{
		{ID: "a", Title: "Spanner: Google's Globally-Distributed Database"},
		{ID: "b", Title: "spanner googles globallydistributed database"},
	}

	got := Papers(papers)
	if len(got) != 1 {
		t.Fatalf("got %d papers, want 1", len(got))
	}
	if got[0].ID != "a" {
		t.Errorf("survivor = %q, want first-seen %q", got[0].ID, "a")
	}
}

func TestPapersDistinctSurvive(t *testing.T) {
	papers := []paper.Paper{
		{ID: "a", Title: "Paper One", DOI: "10.1/one"},
		{ID: "b", Title: "Paper Two", DOI: "10.1/two"},
		{ID: "c", Title: "Paper Three"},
		{ID: "d", Title: "Paper Four"},
	}

	got := Papers(papers)
	if len(got) != 4 {
		t.Fatalf("got %d papers, want 4", len(got))
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q (first-seen order)", i, got[i].ID, want)
		}
	}
}

func TestPapersRicherDuplicateStillDropped(t *testing.T) {
	// First-seen wins even when the later record carries more data.
	papers := []paper.Paper{
		{ID: "sparse", Title: "A Title", DOI: "10.1/x"},
		{ID: "rich", Title: "A Title", DOI: "10.1/x", Abstract: "Full abstract.", Citations: 100},
	}

	got := Papers(papers)
	if len(got) != 1 || got[0].ID != "sparse" {
		t.Fatalf("want only first-seen record to survive, got %+v", got)
	}
}

func TestWithReport(t *testing.T) {
	papers := []paper.Paper{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "One"},
		{ID: "c", Title: "Two"},
	}

	r := WithReport(papers)
	if len(r.Unique) != 2 || r.Dropped != 1 {
		t.Errorf("WithReport = %d unique, %d dropped; want 2, 1", len(r.Unique), r.Dropped)
	}
}
