package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/normalize"
)

var cleanNamesDryRun bool

func init() {
	cleanNamesCmd.Flags().BoolVar(&cleanNamesDryRun, "dry-run", false, "Report changes without rewriting the collection")
	rootCmd.AddCommand(cleanNamesCmd)
}

var cleanNamesCmd = &cobra.Command{
	Use:   "clean-names",
	Short: "Strip disambiguation suffixes from author names",
	Long: `Rewrite author names across the collection, removing trailing
numeric disambiguation suffixes ("Sameer Agarwal 0002" becomes
"Sameer Agarwal"). Names without a suffix are untouched.

Examples:
  pdx clean-names --dry-run
  pdx clean-names`,
	RunE: runCleanNames,
}

// CleanNamesResult is the clean-names command response.
type CleanNamesResult struct {
	PapersChanged  int  `json:"papers_changed"`
	AuthorsCleaned int  `json:"authors_cleaned"`
	DryRun         bool `json:"dry_run"`
}

func runCleanNames(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	papers := mustLoadPapers(repoRoot)

	var result CleanNamesResult
	result.DryRun = cleanNamesDryRun

	for i := range papers {
		changed := false
		for j := range papers[i].Authors {
			cleaned := normalize.AuthorName(papers[i].Authors[j].Name)
			if cleaned != papers[i].Authors[j].Name {
				papers[i].Authors[j].Name = cleaned
				result.AuthorsCleaned++
				changed = true
			}
		}
		if changed {
			result.PapersChanged++
		}
	}

	if !cleanNamesDryRun && result.PapersChanged > 0 {
		mustWritePapers(repoRoot, papers)
	}

	if humanOutput {
		verb := "cleaned"
		if cleanNamesDryRun {
			verb = "would clean"
		}
		fmt.Printf("%s %d author names across %d papers\n", verb, result.AuthorsCleaned, result.PapersChanged)
	} else {
		outputJSON(result)
	}
	return nil
}
