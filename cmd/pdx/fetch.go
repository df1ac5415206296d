package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/dblp"
	"github.com/paperdex/paperdex/internal/dedupe"
	"github.com/paperdex/paperdex/internal/paper"
)

var (
	fetchVenue string
	fetchYear  int
)

func init() {
	fetchCmd.Flags().StringVar(&fetchVenue, "venue", "", "Fetch only this venue key (e.g. SOSP)")
	fetchCmd.Flags().IntVar(&fetchYear, "year", 0, "Fetch only this year")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Crawl DBLP for the configured venues and years",
	Long: `Crawl the DBLP publication index for every venue and year in
venues.yml, deduplicate against the existing collection, and persist.

Each venue's search terms are tried in order until one returns results.
New papers are appended; papers already in the collection (same DOI or
same normalized title) are kept as-is, first occurrence wins.

Examples:
  pdx fetch
  pdx fetch --venue SOSP
  pdx fetch --venue OSDI --year 2022`,
	RunE: runFetch,
}

// FetchVenueResult reports one venue/year crawl.
type FetchVenueResult struct {
	Venue string `json:"venue"`
	Year  int    `json:"year"`
	Found int    `json:"found"`
	Error string `json:"error,omitempty"`
}

// FetchResult is the fetch command response.
type FetchResult struct {
	Crawled    []FetchVenueResult `json:"crawled"`
	Fetched    int                `json:"fetched"`
	Added      int                `json:"added"`
	Duplicates int                `json:"duplicates"`
	Total      int                `json:"total"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	venues, err := config.LoadVenues(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading venues: %v", err)
	}

	selected := venues.Venues
	if fetchVenue != "" {
		v := venues.Find(fetchVenue)
		if v == nil {
			exitWithError(ExitConfigError, "unknown venue %q (not in venues.yml)", fetchVenue)
		}
		selected = []config.Venue{*v}
	}

	years := yearRange(venues, fetchYear)

	var opts []dblp.ClientOption
	if cfg.RequestDelayMS > 0 {
		opts = append(opts, dblp.WithRequestInterval(time.Duration(cfg.RequestDelayMS)*time.Millisecond))
	}
	client := dblp.NewClient(opts...)

	existing := mustLoadPapers(repoRoot)

	var result FetchResult
	var fetched []paper.Paper
	ctx := cmd.Context()

	for _, v := range selected {
		for _, year := range years {
			vr := FetchVenueResult{Venue: v.Key, Year: year}

			var papers []paper.Paper
			var fetchErr error
			for _, term := range v.SearchTerms {
				papers, fetchErr = client.FetchVenueYear(ctx, term, year)
				if fetchErr == nil && len(papers) > 0 {
					break
				}
			}

			if fetchErr != nil {
				vr.Error = fetchErr.Error()
			} else {
				for i := range papers {
					papers[i].Venue.Name = v.Name
					papers[i].Venue.Type = v.Type
					papers[i].Venue.Tier = v.Tier
				}
				vr.Found = len(papers)
				fetched = append(fetched, papers...)
			}
			result.Crawled = append(result.Crawled, vr)

			if humanOutput {
				if vr.Error != "" {
					fmt.Printf("  %s %d: error: %s\n", vr.Venue, vr.Year, vr.Error)
				} else {
					fmt.Printf("  %s %d: %d papers\n", vr.Venue, vr.Year, vr.Found)
				}
			}
		}
	}

	result.Fetched = len(fetched)

	merged := dedupe.Papers(append(existing, fetched...))
	result.Added = len(merged) - len(existing)
	result.Duplicates = result.Fetched - result.Added
	result.Total = len(merged)

	if result.Added > 0 {
		mustWritePapers(repoRoot, merged)
	}

	if humanOutput {
		fmt.Printf("\nFetched %d, added %d new (%d duplicates), %d total\n",
			result.Fetched, result.Added, result.Duplicates, result.Total)
	} else {
		outputJSON(result)
	}
	return nil
}

// yearRange expands the configured year span, or pins to a single year.
func yearRange(venues *config.Venues, only int) []int {
	if only > 0 {
		return []int{only}
	}
	var years []int
	for y := venues.YearStart; y <= venues.YearEnd; y++ {
		years = append(years, y)
	}
	return years
}
