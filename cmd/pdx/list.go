package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listVenue string
	listYear  int
	listLimit int
)

func init() {
	listCmd.Flags().StringVar(&listVenue, "venue", "", "Filter by venue name")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Filter by publication year")
	listCmd.Flags().IntVar(&listLimit, "limit", DefaultListLimit, "Maximum papers to return")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers in the collection",
	Long: `List papers, optionally filtered by venue and year. Queries go
through the SQLite cache, which is rebuilt from papers.jsonl first.

Examples:
  pdx list
  pdx list --venue SOSP --limit 10
  pdx list --year 2023 --human`,
	RunE: runList,
}

// ListResult is the list command response.
type ListResult struct {
	Papers []PaperSummary `json:"papers"`
	Count  int            `json:"count"`
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	db := mustOpenFreshDB(repoRoot)
	defer db.Close()

	papers, err := db.List(listVenue, listYear, listLimit)
	if err != nil {
		exitWithError(ExitDataError, "listing papers: %v", err)
	}

	result := ListResult{Count: len(papers)}
	result.Papers = make([]PaperSummary, 0, len(papers))
	for _, p := range papers {
		result.Papers = append(result.Papers, summarize(p))
	}

	if humanOutput {
		for _, s := range result.Papers {
			fmt.Printf("  %s: %s\n", s.ID, truncateString(s.Title, ListTitleMaxLen))
			fmt.Printf("    %s %d", s.Venue, s.Year)
			if s.Citations > 0 {
				fmt.Printf(", %d citations", s.Citations)
			}
			if s.Country != "" {
				fmt.Printf(", %s", s.Country)
			}
			fmt.Println()
		}
		fmt.Printf("%d paper(s)\n", result.Count)
	} else {
		outputJSON(result)
	}
	return nil
}
