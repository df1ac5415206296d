package paper

// Author represents a paper author. Authors are owned by exactly one Paper;
// the same person appearing on two papers is two Author values.
type Author struct {
	ID           string   `json:"id,omitempty"`           // Source author identifier when known
	Name         string   `json:"name"`                   // Display name, disambiguation suffix stripped
	Affiliations []string `json:"affiliations,omitempty"` // Ordered, duplicates suppressed
	Country      string   `json:"country,omitempty"`      // Derived from affiliation inference
}

// AddAffiliation appends an affiliation if it is not already present,
// preserving the order affiliations were first seen in.
func (a *Author) AddAffiliation(affiliation string) {
	if affiliation == "" {
		return
	}
	for _, existing := range a.Affiliations {
		if existing == affiliation {
			return
		}
	}
	a.Affiliations = append(a.Affiliations, affiliation)
}
