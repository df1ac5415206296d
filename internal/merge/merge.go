// Package merge applies enrichment payloads to canonical papers.
//
// The policy is strictly additive: a field is written only when the
// canonical record's current value is empty, and no field is ever cleared.
// A malformed enrichment leaves the canonical record unchanged rather than
// propagating an error into the batch.
package merge

import (
	"encoding/json"
	"fmt"

	"github.com/paperdex/paperdex/internal/country"
	"github.com/paperdex/paperdex/internal/paper"
)

// Merger applies fill-if-empty enrichment and recomputes derived fields.
type Merger struct {
	countries *country.Inferrer
}

// New returns a Merger that uses the given inferrer for the derived
// country field. Pass country.Default() unless a custom table is needed.
func New(inf *country.Inferrer) *Merger {
	return &Merger{countries: inf}
}

// Apply merges an enrichment candidate into the canonical paper and reports
// whether anything changed. The paper is mutated in place only on success;
// the merge itself cannot fail once the candidate has decoded cleanly.
func (m *Merger) Apply(p *paper.Paper, c paper.Candidate) bool {
	merged := clone(*p)
	changed := false

	if merged.Abstract == "" && c.Abstract != "" {
		merged.Abstract = c.Abstract
		changed = true
	}
	if merged.DOI == "" && c.DOI != "" {
		merged.DOI = c.DOI
		changed = true
	}
	if merged.URL == "" && c.URL != "" {
		merged.URL = c.URL
		changed = true
	}
	if merged.Year == 0 && c.Year != 0 {
		merged.Year = c.Year
		changed = true
	}
	if len(merged.Keywords) == 0 && len(c.Keywords) > 0 {
		merged.Keywords = append([]string(nil), c.Keywords...)
		changed = true
	}
	// Citation counts below zero would violate the record invariant;
	// such enrichments are ignored wholesale for this field.
	if merged.Citations == 0 && c.Citations > 0 {
		merged.Citations = c.Citations
		changed = true
	}
	if len(merged.References) == 0 && len(c.References) > 0 {
		merged.References = append([]string(nil), c.References...)
		changed = true
	}

	if m.mergeAffiliations(&merged, c) {
		changed = true
	}

	*p = merged
	return changed
}

// ApplyJSON decodes a raw enrichment payload and applies it. A payload that
// does not decode into the candidate shape is rejected and the paper is left
// untouched.
func (m *Merger) ApplyJSON(p *paper.Paper, raw []byte) (bool, error) {
	var c paper.Candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return false, fmt.Errorf("decoding enrichment: %w", err)
	}
	return m.Apply(p, c), nil
}

// mergeAffiliations unions the candidate's author affiliations into the
// canonical authors positionally: candidate author i enriches canonical
// author i, and authors beyond the shorter list are left untouched. This
// assumes byline order is consistent across sources. After any update the
// derived country fields are recomputed.
func (m *Merger) mergeAffiliations(p *paper.Paper, c paper.Candidate) bool {
	n := len(p.Authors)
	if len(c.Authors) < n {
		n = len(c.Authors)
	}

	changed := false
	for i := 0; i < n; i++ {
		before := len(p.Authors[i].Affiliations)
		for _, aff := range c.Authors[i].Affiliations {
			p.Authors[i].AddAffiliation(aff)
		}
		if len(p.Authors[i].Affiliations) != before {
			changed = true
		}
	}

	if changed {
		m.inferCountries(p)
	}
	return changed
}

// inferCountries recomputes the derived country fields: each author gets the
// first inference from its own affiliations, and the paper inherits the
// first non-empty author country in byline order.
func (m *Merger) inferCountries(p *paper.Paper) {
	for i := range p.Authors {
		if c := m.countries.InferFirst(p.Authors[i].Affiliations); c != "" {
			p.Authors[i].Country = c
		}
	}
	for _, a := range p.Authors {
		if a.Country != "" {
			p.Country = a.Country
			return
		}
	}
}

// clone deep-copies the slices a merge may touch so a partially applied
// merge can never leak into the caller's record.
func clone(p paper.Paper) paper.Paper {
	p.Keywords = append([]string(nil), p.Keywords...)
	p.References = append([]string(nil), p.References...)
	authors := make([]paper.Author, len(p.Authors))
	for i, a := range p.Authors {
		a.Affiliations = append([]string(nil), a.Affiliations...)
		authors[i] = a
	}
	p.Authors = authors
	return p
}
