package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/enrich"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show collection statistics",
	Long: `Summarize the collection: record counts, field coverage, how many
papers still need enrichment, and per-venue totals.

Examples:
  pdx info
  pdx info --human`,
	RunE: runInfo,
}

// InfoResult is the info command response.
type InfoResult struct {
	Path            string         `json:"path"`
	Total           int            `json:"total"`
	WithDOI         int            `json:"with_doi"`
	WithAbstract    int            `json:"with_abstract"`
	WithKeywords    int            `json:"with_keywords"`
	WithCountry     int            `json:"with_country"`
	WithReferences  int            `json:"with_references"`
	NeedsEnrichment int            `json:"needs_enrichment"`
	YearMin         int            `json:"year_min,omitempty"`
	YearMax         int            `json:"year_max,omitempty"`
	Venues          map[string]int `json:"venues"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	papers := mustLoadPapers(repoRoot)

	result := InfoResult{
		Path:   repoRoot,
		Total:  len(papers),
		Venues: make(map[string]int),
	}

	for _, p := range papers {
		if p.DOI != "" {
			result.WithDOI++
		}
		if p.Abstract != "" {
			result.WithAbstract++
		}
		if len(p.Keywords) > 0 {
			result.WithKeywords++
		}
		if p.Country != "" {
			result.WithCountry++
		}
		if len(p.References) > 0 {
			result.WithReferences++
		}
		if enrich.NeedsEnrichment(p) {
			result.NeedsEnrichment++
		}
		if p.Year > 0 {
			if result.YearMin == 0 || p.Year < result.YearMin {
				result.YearMin = p.Year
			}
			if p.Year > result.YearMax {
				result.YearMax = p.Year
			}
		}
		if p.Venue.Name != "" {
			result.Venues[p.Venue.Name]++
		}
	}

	if humanOutput {
		printInfoHuman(result)
	} else {
		outputJSON(result)
	}
	return nil
}

func printInfoHuman(r InfoResult) {
	fmt.Printf("Repository: %s\n", r.Path)
	fmt.Printf("Papers:     %d", r.Total)
	if r.YearMin > 0 {
		fmt.Printf(" (%d-%d)", r.YearMin, r.YearMax)
	}
	fmt.Println()
	fmt.Printf("  with DOI:        %d\n", r.WithDOI)
	fmt.Printf("  with abstract:   %d\n", r.WithAbstract)
	fmt.Printf("  with keywords:   %d\n", r.WithKeywords)
	fmt.Printf("  with country:    %d\n", r.WithCountry)
	fmt.Printf("  with references: %d\n", r.WithReferences)
	fmt.Printf("  need enrichment: %d\n", r.NeedsEnrichment)

	if len(r.Venues) > 0 {
		names := make([]string, 0, len(r.Venues))
		for name := range r.Venues {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("Venues:")
		for _, name := range names {
			fmt.Printf("  %-12s %d\n", name, r.Venues[name])
		}
	}
}
