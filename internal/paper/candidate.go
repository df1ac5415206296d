package paper

import (
	"encoding/json"
	"strings"
)

// Candidate is one external source's partial view of a paper. Every field is
// optional; a Candidate is only ever input to the resolver and merger and is
// never persisted.
type Candidate struct {
	Title      string      `json:"title,omitempty"`
	Authors    []Author    `json:"authors,omitempty"`
	Year       int         `json:"year,omitempty"`
	Abstract   string      `json:"abstract,omitempty"`
	Keywords   KeywordList `json:"keywords,omitempty"`
	Citations  int         `json:"citations,omitempty"`
	References []string    `json:"references,omitempty"`
	DOI        string      `json:"doi,omitempty"`
	URL        string      `json:"url,omitempty"`

	Source string `json:"source,omitempty"` // Which fetcher produced this view
}

// AuthorNames returns the candidate's author names in byline order.
func (c Candidate) AuthorNames() []string {
	names := make([]string, len(c.Authors))
	for i, a := range c.Authors {
		names[i] = a.Name
	}
	return names
}

// KeywordList accepts either a native JSON array or a single comma-delimited
// string, which is how some sources deliver keywords. Tokens are trimmed and
// empty tokens dropped.
type KeywordList []string

// UnmarshalJSON implements json.Unmarshaler.
func (k *KeywordList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*k = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*k = SplitKeywords(s)
	return nil
}

// SplitKeywords splits a comma-delimited keyword string, trimming whitespace
// and dropping empty tokens.
func SplitKeywords(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
