package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/paper"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id-or-doi-or-title>",
	Short: "Show one paper",
	Long: `Look up a single paper by its id, its DOI, or its title (title
lookup is normalized, so punctuation and case do not matter).

Examples:
  pdx get conf/sosp/CorbettDEFFFGGHHH12
  pdx get 10.1145/2491245
  pdx get "Spanner: Google's Globally-Distributed Database" --human`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	db := mustOpenFreshDB(repoRoot)
	defer db.Close()

	key := args[0]
	p, err := db.GetByID(key)
	if err == nil && p == nil {
		p, err = db.GetByDOI(key)
	}
	if err == nil && p == nil {
		p, err = db.FindByTitle(key)
	}
	if err != nil {
		exitWithError(ExitDataError, "looking up paper: %v", err)
	}
	if p == nil {
		exitWithError(ExitError, "no paper matches %q", key)
	}

	if humanOutput {
		printPaperHuman(p)
	} else {
		outputJSON(p)
	}
	return nil
}

func printPaperHuman(p *paper.Paper) {
	fmt.Printf("%s\n", truncateString(p.Title, DetailTitleMaxLen))
	fmt.Printf("  ID:      %s\n", p.ID)
	if p.DOI != "" {
		fmt.Printf("  DOI:     %s\n", p.DOI)
	}
	fmt.Printf("  Venue:   %s (%d)\n", p.Venue.Name, p.Year)
	fmt.Printf("  Authors: %s\n", formatAuthorsShort(p.Authors, 5))
	if p.Country != "" {
		fmt.Printf("  Country: %s\n", p.Country)
	}
	if p.Citations > 0 {
		fmt.Printf("  Citations: %d\n", p.Citations)
	}
	if len(p.Keywords) > 0 {
		fmt.Printf("  Keywords: %s\n", strings.Join(p.Keywords, ", "))
	}
	if len(p.References) > 0 {
		fmt.Printf("  References: %d local\n", len(p.References))
	}
	if p.Abstract != "" {
		fmt.Printf("  Abstract: %s\n", truncateString(p.Abstract, 200))
	}
	if p.URL != "" {
		fmt.Printf("  URL:     %s\n", p.URL)
	}
}
