package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/paperdex/paperdex/internal/paper"
)

// Constants for output formatting.
const (
	DefaultListLimit = 50 // Default limit for list command

	ListTitleMaxLen   = 50 // Used in list command output
	DetailTitleMaxLen = 70 // Used in get command detail view
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// PaperSummary is the reduced view used by list output.
type PaperSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	Year      int    `json:"year"`
	Citations int    `json:"citations"`
	Country   string `json:"country,omitempty"`
}

func summarize(p paper.Paper) PaperSummary {
	return PaperSummary{
		ID:        p.ID,
		Title:     p.Title,
		Venue:     p.Venue.Name,
		Year:      p.Year,
		Citations: p.Citations,
		Country:   p.Country,
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatAuthorsShort joins author names with "et al." past maxCount.
func formatAuthorsShort(authors []paper.Author, maxCount int) string {
	if len(authors) == 0 {
		return ""
	}

	var names []string
	for i, a := range authors {
		if i >= maxCount {
			names = append(names, "et al.")
			break
		}
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
