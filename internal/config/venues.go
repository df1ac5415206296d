package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Venues is the crawl configuration stored in .paperdex/venues.yml.
type Venues struct {
	YearStart int     `yaml:"year_start"`
	YearEnd   int     `yaml:"year_end"`
	Venues    []Venue `yaml:"venues"`
}

// Venue describes one publication venue to crawl.
type Venue struct {
	Key         string   `yaml:"key"`  // Short key used in CLI arguments
	Name        string   `yaml:"name"` // Display name stored on papers
	Type        string   `yaml:"type"` // conference, journal
	Tier        string   `yaml:"tier,omitempty"`
	SearchTerms []string `yaml:"search_terms"` // Tried in order against the index
}

// LoadVenues reads the venue configuration, falling back to the built-in
// default table when the file does not exist.
func LoadVenues(root string) (*Venues, error) {
	data, err := os.ReadFile(VenuesPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultVenues(), nil
		}
		return nil, fmt.Errorf("reading venues config: %w", err)
	}

	var v Venues
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing venues config: %w", err)
	}
	return &v, nil
}

// SaveVenues writes the venue configuration.
func SaveVenues(root string, v *Venues) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling venues config: %w", err)
	}
	if err := os.MkdirAll(PaperdexPath(root), 0755); err != nil {
		return fmt.Errorf("creating repository directory: %w", err)
	}
	if err := os.WriteFile(VenuesPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing venues config: %w", err)
	}
	return nil
}

// Find returns the venue with the given key, or nil.
func (v *Venues) Find(key string) *Venue {
	for i := range v.Venues {
		if v.Venues[i].Key == key {
			return &v.Venues[i]
		}
	}
	return nil
}

// DefaultVenues returns the built-in crawl table: the major systems
// conferences from 2011 onward.
func DefaultVenues() *Venues {
	return &Venues{
		YearStart: 2011,
		YearEnd:   2025,
		Venues: []Venue{
			{Key: "SOSP", Name: "SOSP", Type: "conference", Tier: "top", SearchTerms: []string{"SOSP"}},
			{Key: "OSDI", Name: "OSDI", Type: "conference", Tier: "top", SearchTerms: []string{"OSDI"}},
			{Key: "ATC", Name: "USENIX ATC", Type: "conference", Tier: "top", SearchTerms: []string{"USENIX Annual Technical Conference", "USENIX ATC"}},
			{Key: "ASPLOS", Name: "ASPLOS", Type: "conference", Tier: "top", SearchTerms: []string{"ASPLOS"}},
			{Key: "EuroSys", Name: "EuroSys", Type: "conference", Tier: "top", SearchTerms: []string{"EuroSys"}},
			{Key: "SC", Name: "SC", Type: "conference", Tier: "top", SearchTerms: []string{"Supercomputing", "SC Conference"}},
		},
	}
}
