package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/dedupe"
)

var dedupeDryRun bool

func init() {
	dedupeCmd.Flags().BoolVar(&dedupeDryRun, "dry-run", false, "Report duplicates without rewriting the collection")
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate papers from the collection",
	Long: `Collapse duplicate records in the collection. Two records are
duplicates when they share a DOI, or when neither has a DOI and their
normalized titles are equal. The first occurrence wins and the surviving
order is preserved.

Examples:
  pdx dedupe --dry-run
  pdx dedupe`,
	RunE: runDedupe,
}

// DedupeResult is the dedupe command response.
type DedupeResult struct {
	Before  int  `json:"before"`
	After   int  `json:"after"`
	Dropped int  `json:"dropped"`
	DryRun  bool `json:"dry_run"`
}

func runDedupe(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	papers := mustLoadPapers(repoRoot)

	report := dedupe.WithReport(papers)
	result := DedupeResult{
		Before:  len(papers),
		After:   len(report.Unique),
		Dropped: report.Dropped,
		DryRun:  dedupeDryRun,
	}

	if !dedupeDryRun && report.Dropped > 0 {
		mustWritePapers(repoRoot, report.Unique)
	}

	if humanOutput {
		verb := "dropped"
		if dedupeDryRun {
			verb = "would drop"
		}
		fmt.Printf("%d papers, %s %d duplicates, %d remain\n", result.Before, verb, result.Dropped, result.After)
	} else {
		outputJSON(result)
	}
	return nil
}
