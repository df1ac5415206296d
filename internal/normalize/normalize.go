// Package normalize canonicalizes free-text identifiers (titles, author
// names) into comparable forms. All functions are pure and idempotent.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suffixPattern matches a trailing disambiguation number as emitted by DBLP
// author pages, e.g. "Sameer Agarwal 0002".
var suffixPattern = regexp.MustCompile(`\s+\d{1,4}$`)

// foldMarks decomposes to NFKD and drops combining marks, so accented and
// unaccented spellings of the same title compare equal.
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Title canonicalizes a paper title for comparison: folds diacritics,
// lowercases, strips punctuation, and collapses runs of whitespace.
func Title(s string) string {
	if folded, _, err := transform.String(foldMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation and symbols are dropped entirely.
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// AuthorName strips the trailing numeric disambiguation suffix some sources
// attach to author names ("Jane Doe 0002" -> "Jane Doe"). Names without a
// suffix pass through unchanged.
func AuthorName(name string) string {
	return strings.TrimSpace(suffixPattern.ReplaceAllString(name, ""))
}
