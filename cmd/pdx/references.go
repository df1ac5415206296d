package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/resolve"
	"github.com/paperdex/paperdex/internal/s2"
	"github.com/paperdex/paperdex/internal/similarity"
)

var (
	refsOffset int
	refsLimit  int
	refsDryRun bool
)

func init() {
	referencesCmd.Flags().IntVar(&refsOffset, "offset", 0, "Index to resume from")
	referencesCmd.Flags().IntVar(&refsLimit, "limit", 0, "Maximum papers to process (0 = all)")
	referencesCmd.Flags().BoolVar(&refsDryRun, "dry-run", false, "Run lookups but do not persist linked references")
	rootCmd.AddCommand(referencesCmd)
}

var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Link papers to the local papers they cite",
	Long: `For each paper with no stored references, find its Semantic
Scholar record, pull its reference list, and match every reference back
into the local collection. Matched local paper ids are stored on the
paper's references field; references that resolve to nothing local are
discarded.

Matching uses the search threshold to accept the paper's own Semantic
Scholar record and the stricter reference threshold to accept each
reference as a local paper.

Examples:
  pdx references
  pdx references --offset 200 --limit 100`,
	RunE: runReferences,
}

// ReferencesError attributes a failure to one paper.
type ReferencesError struct {
	Index   int    `json:"index"`
	PaperID string `json:"paper_id"`
	Message string `json:"error"`
}

// ReferencesResult is the references command response.
type ReferencesResult struct {
	Processed  int               `json:"processed"`
	Linked     int               `json:"linked"`         // Papers that gained references
	LinkedRefs int               `json:"linked_refs"`    // Local reference edges stored
	NotFound   int               `json:"not_found"`      // Papers with no S2 match
	AlreadySet int               `json:"already_linked"` // Papers skipped: references present
	Failed     int               `json:"failed"`
	Errors     []ReferencesError `json:"errors,omitempty"`
}

func runReferences(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadPapers(repoRoot)

	client := s2.NewClient()
	resolver := resolve.New(similarity.DefaultWeights, cfg.EffectiveReferenceThreshold())
	searchThreshold := cfg.EffectiveSearchThreshold()

	start, end := window(refsOffset, refsLimit, len(papers))

	var result ReferencesResult
	ctx := cmd.Context()

	for i := start; i < end; i++ {
		if ctx.Err() != nil {
			break
		}
		p := &papers[i]

		if len(p.References) > 0 {
			result.AlreadySet++
			continue
		}
		result.Processed++

		s2ID, _, err := client.BestMatch(ctx, *p, 10, searchThreshold)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ReferencesError{Index: i, PaperID: p.ID, Message: err.Error()})
			continue
		}
		if s2ID == "" {
			result.NotFound++
			continue
		}

		stubs, err := client.PaperReferences(ctx, s2ID)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ReferencesError{Index: i, PaperID: p.ID, Message: err.Error()})
			continue
		}

		var localIDs []string
		for _, stub := range stubs {
			match := resolver.Resolve(s2.MapReferenceCandidate(stub), papers)
			if !match.Matched || match.PaperID == p.ID {
				continue
			}
			localIDs = appendUniqueID(localIDs, match.PaperID)
		}

		if len(localIDs) > 0 {
			p.References = localIDs
			result.Linked++
			result.LinkedRefs += len(localIDs)
		}

		if humanOutput {
			fmt.Printf("  %s: %d local references\n", p.ID, len(localIDs))
		}
	}

	if !refsDryRun && result.Linked > 0 {
		mustWritePapers(repoRoot, papers)
	}

	if humanOutput {
		fmt.Printf("\nprocessed %d, linked %d papers (%d references), not found %d, failed %d\n",
			result.Processed, result.Linked, result.LinkedRefs, result.NotFound, result.Failed)
	} else {
		outputJSON(result)
	}
	return nil
}

// window bounds an offset/limit pair to [0, n]. Negative offsets start at
// the beginning; a zero limit means the rest of the collection.
func window(offset, limit, n int) (start, end int) {
	start = offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = n
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return start, end
}

func appendUniqueID(ids []string, id string) []string {
	for _, have := range ids {
		if have == id {
			return ids
		}
	}
	return append(ids, id)
}
