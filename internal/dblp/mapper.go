package dblp

import (
	"strconv"
	"strings"

	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// mapHit converts a DBLP hit into a canonical paper. The venue search term
// is the fallback venue name when the hit carries none.
func mapHit(hit Hit, venue string) paper.Paper {
	info := hit.Info

	venueName := info.Venue
	if venueName == "" {
		venueName = info.BookTitle
	}
	if venueName == "" {
		venueName = venue
	}

	url := info.EE
	if url == "" {
		url = info.URL
	}

	year, _ := strconv.Atoi(info.Year)

	return paper.Paper{
		ID:        paper.NewID(info.Key, info.DOI),
		SourceKey: info.Key,
		DOI:       info.DOI,
		Title:     info.Title,
		Authors:   mapAuthors(info.Authors.Author),
		Venue:     paper.Venue{Name: venueName, Type: "conference"},
		Year:      year,
		URL:       url,
	}
}

// mapAuthors converts DBLP author entries, stripping disambiguation
// suffixes from display names. An entry without a persistent ID gets one
// derived from its name.
func mapAuthors(entries []AuthorEntry) []paper.Author {
	var authors []paper.Author
	for _, e := range entries {
		name := e.Text
		if name == "" {
			name = e.PID
		}
		if name == "" {
			continue
		}

		id := e.PID
		if id == "" {
			id = slugifyName(name)
		}

		authors = append(authors, paper.Author{
			ID:   id,
			Name: normalize.AuthorName(name),
		})
	}
	return authors
}

// slugifyName derives a stable author ID from a display name.
func slugifyName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, " ", "-")
}
