package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/aminer"
	"github.com/paperdex/paperdex/internal/country"
	"github.com/paperdex/paperdex/internal/enrich"
	"github.com/paperdex/paperdex/internal/merge"
	"github.com/paperdex/paperdex/internal/s2"
	"github.com/paperdex/paperdex/internal/scraper"
)

var (
	enrichSource string
	enrichOffset int
	enrichLimit  int
	enrichDryRun bool
)

func init() {
	enrichCmd.Flags().StringVar(&enrichSource, "source", "s2", "Enrichment source: s2, aminer, or scraper")
	enrichCmd.Flags().IntVar(&enrichOffset, "offset", 0, "Index to resume from")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "Maximum papers to process (0 = all)")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "Run lookups but do not persist merged fields")
	rootCmd.AddCommand(enrichCmd)
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill missing fields from an external source",
	Long: `Walk the collection in order and fill missing fields (abstract,
keywords, citations, affiliations, DOI, URL) from one external source.
Populated fields are never overwritten. A failed lookup leaves that record
unchanged and the pass continues; re-run with --offset to resume an
interrupted pass.

Sources:
  s2       Semantic Scholar search by DOI or title (S2_API_KEY optional)
  aminer   AMiner lookup by DOI (AMINER_API_KEY + AMINER_USER_ID required)
  scraper  Publisher landing pages (ACM DL, IEEE Xplore) via the paper URL

Examples:
  pdx enrich --source s2
  pdx enrich --source scraper --offset 120 --limit 50
  pdx enrich --source aminer --dry-run`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	papers := mustLoadPapers(repoRoot)

	src := buildSource(enrichSource)
	merger := merge.New(country.Default())

	result := enrich.Run(cmd.Context(), papers, src, merger, enrich.Options{
		Offset: enrichOffset,
		Limit:  enrichLimit,
	})

	if !enrichDryRun && result.Enriched > 0 {
		mustWritePapers(repoRoot, papers)
	}

	if humanOutput {
		fmt.Printf("%s: processed %d, enriched %d, unchanged %d, not found %d, failed %d\n",
			result.Source, result.Processed, result.Enriched, result.Unchanged, result.NotFound, result.Failed)
		for _, e := range result.Errors {
			fmt.Printf("  [%d] %s: %s\n", e.Index, e.PaperID, e.Message)
		}
		if enrichDryRun {
			fmt.Println("(dry run: nothing persisted)")
		}
	} else {
		outputJSON(result)
	}
	return nil
}

func buildSource(name string) enrich.Source {
	switch name {
	case "s2":
		return s2.NewSource(s2.NewClient())
	case "aminer":
		client := aminer.NewClient()
		if !client.HasCredentials() {
			exitWithError(ExitConfigError, "AMiner credentials missing\n  Hint: set AMINER_API_KEY and AMINER_USER_ID (a .env file works).")
		}
		return aminer.NewSource(client)
	case "scraper":
		return scraper.NewSource(scraper.NewClient())
	default:
		exitWithError(ExitError, "unknown source %q (expected s2, aminer, or scraper)", name)
		return nil
	}
}
