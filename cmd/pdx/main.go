// Package main provides the pdx CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/paper"
	"github.com/paperdex/paperdex/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pdx",
	Short: "Deduplicated cross-source paper collection CLI",
	Long: `pdx maintains a deduplicated collection of bibliographic records
aggregated from DBLP, Semantic Scholar, AMiner and publisher pages.

Core features:
  - Venue/year crawling of the DBLP publication index
  - DOI-or-title deduplication with first-seen-wins ordering
  - Fill-if-empty enrichment from multiple external sources
  - Reference linking back into the local collection
  - Affiliation-based country inference

Data is stored in git-versionable JSONL with ephemeral SQLite for queries.
All commands output JSON by default for scripting and agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// API keys (S2_API_KEY, AMINER_API_KEY, AMINER_USER_ID) may live in a
	// local .env file; absence is fine.
	godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustFindRepository finds and validates the repository, exits on error.
// Returns the repository root path.
func mustFindRepository() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	repoRoot, err := config.FindRepository(cwd)
	if err != nil {
		exitWithError(ExitConfigError, "%v\n  Hint: Run 'pdx init' to create a repository here.", err)
	}
	return repoRoot
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLoadPapers reads the full canonical collection, exits on error.
func mustLoadPapers(repoRoot string) []paper.Paper {
	papers, err := storage.ReadAll(config.PapersPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "reading papers: %v", err)
	}
	return papers
}

// mustWritePapers backs up the current collection, rewrites it, and
// refreshes the query cache. Exits on error.
func mustWritePapers(repoRoot string, papers []paper.Paper) {
	papersPath := config.PapersPath(repoRoot)
	if _, err := storage.Backup(papersPath, config.BackupPath(repoRoot)); err != nil {
		exitWithError(ExitError, "backing up papers: %v", err)
	}
	if err := storage.WriteAll(papersPath, papers); err != nil {
		exitWithError(ExitDataError, "writing papers: %v", err)
	}
	rebuildCache(repoRoot, papers)
}

// rebuildCache refreshes the ephemeral SQLite cache from the in-memory
// collection. Cache failures are not fatal: the JSONL is authoritative and
// the cache is rebuilt on next use.
func rebuildCache(repoRoot string, papers []paper.Paper) {
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: creating cache directory: %v\n", err)
		return
	}
	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening query cache: %v\n", err)
		return
	}
	defer db.Close()
	if _, err := db.Rebuild(papers); err != nil {
		fmt.Fprintf(os.Stderr, "warning: rebuilding query cache: %v\n", err)
	}
}

// mustOpenFreshDB opens the query cache and rebuilds it from the JSONL.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenFreshDB(repoRoot string) *storage.DB {
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening query cache: %v", err)
	}
	if _, err := db.RebuildFromJSONL(config.PapersPath(repoRoot)); err != nil {
		db.Close()
		exitWithError(ExitDataError, "rebuilding query cache: %v", err)
	}
	return db
}
