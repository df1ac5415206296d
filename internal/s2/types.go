// Package s2 provides a client for the Semantic Scholar Academic Graph API.
package s2

// S2Paper represents a paper from the Semantic Scholar API.
type S2Paper struct {
	PaperID     string      `json:"paperId"`
	ExternalIDs ExternalIDs `json:"externalIds,omitempty"`
	Title       string      `json:"title"`
	Abstract    string      `json:"abstract,omitempty"`
	Authors     []S2Author  `json:"authors,omitempty"`
	Year        int         `json:"year,omitempty"`
	Venue       string      `json:"venue,omitempty"`
	URL         string      `json:"url,omitempty"`
	Citations   int         `json:"citationCount,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
	References  []S2RefStub `json:"references,omitempty"`
}

// ExternalIDs contains external identifiers for a paper.
type ExternalIDs struct {
	DOI   string `json:"DOI,omitempty"`
	ArXiv string `json:"ArXiv,omitempty"`
}

// S2Author represents an author from the Semantic Scholar API.
type S2Author struct {
	AuthorID     string   `json:"authorId,omitempty"`
	Name         string   `json:"name"`
	Affiliations []string `json:"affiliations,omitempty"`
}

// S2RefStub is the reference shape embedded in a paper details response.
type S2RefStub struct {
	PaperID string     `json:"paperId,omitempty"`
	Title   string     `json:"title,omitempty"`
	Year    int        `json:"year,omitempty"`
	URL     string     `json:"url,omitempty"`
	Authors []S2Author `json:"authors,omitempty"`
}

// searchResponse is the paper search endpoint response.
type searchResponse struct {
	Total  int       `json:"total"`
	Offset int       `json:"offset"`
	Data   []S2Paper `json:"data"`
}

// referencesResponse is the paper details response when only the references
// field is requested.
type referencesResponse struct {
	PaperID    string      `json:"paperId"`
	References []S2RefStub `json:"references"`
}
