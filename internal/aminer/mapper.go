package aminer

import (
	"strings"

	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// MapCandidate converts an AMiner paper record into a merge candidate.
func MapCandidate(p *Paper) paper.Candidate {
	c := paper.Candidate{
		Title:     strings.TrimSpace(p.Title),
		Year:      p.Year,
		Abstract:  strings.TrimSpace(p.Abstract),
		DOI:       strings.TrimSpace(p.DOI),
		Citations: p.NCitaion,
		Source:    "aminer",
	}
	for _, kw := range p.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			c.Keywords = append(c.Keywords, kw)
		}
	}
	for _, a := range p.Authors {
		name := normalize.AuthorName(a.Name)
		if name == "" {
			continue
		}
		author := paper.Author{ID: a.ID, Name: name}
		if org := strings.TrimSpace(a.Org); org != "" {
			author.Affiliations = []string{org}
		}
		c.Authors = append(c.Authors, author)
	}
	if len(p.URLs) > 0 {
		c.URL = strings.TrimSpace(p.URLs[0])
	}
	return c
}
