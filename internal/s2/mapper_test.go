package s2

import (
	"reflect"
	"testing"
)

func TestMapCandidate(t *testing.T) {
	p := S2Paper{
		PaperID:   "abc123",
		Title:     "Spanner: Google's Globally-Distributed Database",
		Abstract:  "Spanner is Google's scalable database.",
		Year:      2012,
		Citations: 1500,
		URL:       "https://example.org/spanner",
		ExternalIDs: ExternalIDs{
			DOI: "10.1145/2491245",
		},
		Authors: []S2Author{
			{AuthorID: "a1", Name: "James C. Corbett", Affiliations: []string{"Google"}},
			{AuthorID: "a2", Name: "Jeffrey Dean 0001"},
		},
		References: []S2RefStub{
			{PaperID: "ref1"},
			{Title: "No ID entry"}, // Dropped: no paper ID to store
			{PaperID: "ref2"},
		},
	}

	c := MapCandidate(p)

	if c.Title != p.Title || c.Abstract != p.Abstract || c.Year != 2012 || c.Citations != 1500 {
		t.Errorf("basic fields wrong: %+v", c)
	}
	if c.DOI != "10.1145/2491245" || c.Source != "s2" {
		t.Errorf("identity fields wrong: %+v", c)
	}
	if len(c.Authors) != 2 {
		t.Fatalf("got %d authors, want 2", len(c.Authors))
	}
	if c.Authors[0].Affiliations[0] != "Google" {
		t.Errorf("affiliations not mapped: %+v", c.Authors[0])
	}
	if c.Authors[1].Name != "Jeffrey Dean" {
		t.Errorf("disambiguation suffix not stripped: %q", c.Authors[1].Name)
	}
	if !reflect.DeepEqual(c.References, []string{"ref1", "ref2"}) {
		t.Errorf("References = %v", c.References)
	}
}

func TestMapReferenceCandidate(t *testing.T) {
	ref := S2RefStub{
		PaperID: "xyz",
		Title:   "In Search of an Understandable Consensus Algorithm",
		Year:    2014,
		URL:     "https://example.org/raft",
		Authors: []S2Author{{Name: "Diego Ongaro"}},
	}

	c := MapReferenceCandidate(ref)
	if c.Title != ref.Title || c.Year != 2014 || c.URL != ref.URL {
		t.Errorf("fields wrong: %+v", c)
	}
	if len(c.Authors) != 1 || c.Authors[0].Name != "Diego Ongaro" {
		t.Errorf("authors wrong: %+v", c.Authors)
	}
}
