// Package paper defines the core domain types for the canonical paper collection.
package paper

import (
	"github.com/google/uuid"
)

// Paper represents one canonical bibliographic record. Exactly one Paper
// exists per real-world publication after deduplication; enrichment passes
// fill missing fields but never overwrite populated ones.
type Paper struct {
	// Identity
	ID  string `json:"id"`            // Stable identifier (source key, DOI, or generated)
	DOI string `json:"doi,omitempty"` // Digital Object Identifier (primary deduplication key)

	// Metadata
	Title    string   `json:"title"`
	Authors  []Author `json:"authors"` // Byline order
	Venue    Venue    `json:"venue"`
	Year     int      `json:"year,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	// Citation graph
	Citations  int      `json:"citations"`            // Citation count, never negative
	References []string `json:"references,omitempty"` // External or local paper identifiers

	// Location
	URL string `json:"url,omitempty"`

	// Derived, not authoritative; recomputed from author affiliations.
	Country string `json:"country,omitempty"`

	// Import tracking
	SourceKey string `json:"source_key,omitempty"` // Key in the originating index (e.g. DBLP key)
}

// Venue identifies where a paper was published.
type Venue struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // conference, journal
	Tier string `json:"tier,omitempty"`
}

// NewID derives a stable paper identifier. The source key wins, then the
// DOI, then a generated UUID so every record has a unique handle.
func NewID(sourceKey, doi string) string {
	if sourceKey != "" {
		return sourceKey
	}
	if doi != "" {
		return doi
	}
	return uuid.NewString()
}

// AuthorNames returns the paper's author names in byline order.
func (p Paper) AuthorNames() []string {
	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		names[i] = a.Name
	}
	return names
}
