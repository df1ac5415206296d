package s2

import (
	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// MapCandidate converts an S2 paper into the canonical candidate shape
// consumed by the resolver and merger.
func MapCandidate(p S2Paper) paper.Candidate {
	c := paper.Candidate{
		Title:     p.Title,
		Abstract:  p.Abstract,
		Year:      p.Year,
		Citations: p.Citations,
		Keywords:  paper.KeywordList(p.Keywords),
		DOI:       p.ExternalIDs.DOI,
		URL:       p.URL,
		Source:    "s2",
	}

	for _, a := range p.Authors {
		c.Authors = append(c.Authors, paper.Author{
			ID:           a.AuthorID,
			Name:         normalize.AuthorName(a.Name),
			Affiliations: a.Affiliations,
		})
	}

	for _, ref := range p.References {
		if ref.PaperID != "" {
			c.References = append(c.References, ref.PaperID)
		}
	}

	return c
}

// MapReferenceCandidate converts a reference stub into a candidate for
// matching back into the local collection.
func MapReferenceCandidate(ref S2RefStub) paper.Candidate {
	c := paper.Candidate{
		Title:  ref.Title,
		Year:   ref.Year,
		URL:    ref.URL,
		Source: "s2",
	}
	for _, a := range ref.Authors {
		c.Authors = append(c.Authors, paper.Author{
			ID:   a.AuthorID,
			Name: normalize.AuthorName(a.Name),
		})
	}
	return c
}
