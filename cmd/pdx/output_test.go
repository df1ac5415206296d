package main

import (
	"testing"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/paper"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "abc", 10, "abc"},
		{"exact length unchanged", "abcdefghij", 10, "abcdefghij"},
		{"long string truncated", "abcdefghijk", 10, "abcdefg..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatAuthorsShort(t *testing.T) {
	authors := []paper.Author{
		{Name: "Ada Lovelace"},
		{Name: "Alan Turing"},
		{Name: "Grace Hopper"},
		{Name: "Edsger Dijkstra"},
	}

	if got := formatAuthorsShort(authors, 2); got != "Ada Lovelace, Alan Turing, et al." {
		t.Errorf("formatAuthorsShort = %q", got)
	}
	if got := formatAuthorsShort(authors[:1], 3); got != "Ada Lovelace" {
		t.Errorf("formatAuthorsShort single = %q", got)
	}
	if got := formatAuthorsShort(nil, 3); got != "" {
		t.Errorf("formatAuthorsShort empty = %q", got)
	}
}

func TestYearRange(t *testing.T) {
	venues := &config.Venues{YearStart: 2020, YearEnd: 2022}

	years := yearRange(venues, 0)
	if len(years) != 3 || years[0] != 2020 || years[2] != 2022 {
		t.Errorf("yearRange span = %v", years)
	}

	years = yearRange(venues, 2015)
	if len(years) != 1 || years[0] != 2015 {
		t.Errorf("yearRange pinned = %v", years)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		offset, limit int
		n             int
		wantS, wantE  int
	}{
		{"full collection", 0, 0, 10, 0, 10},
		{"offset and limit", 2, 3, 10, 2, 5},
		{"limit past end", 8, 5, 10, 8, 10},
		{"negative offset starts at zero", -1, 0, 10, 0, 10},
		{"offset past end is empty", 15, 0, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.offset, tt.limit, tt.n)
			if start != tt.wantS || end != tt.wantE {
				t.Errorf("window(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.offset, tt.limit, tt.n, start, end, tt.wantS, tt.wantE)
			}
		})
	}
}

func TestAppendUniqueID(t *testing.T) {
	ids := appendUniqueID(nil, "a")
	ids = appendUniqueID(ids, "b")
	ids = appendUniqueID(ids, "a")
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("appendUniqueID = %v", ids)
	}
}

func TestSummarize(t *testing.T) {
	p := paper.Paper{
		ID:        "conf/sosp/X12",
		Title:     "A Title",
		Venue:     paper.Venue{Name: "SOSP"},
		Year:      2012,
		Citations: 7,
		Country:   "United States",
	}
	s := summarize(p)
	if s.ID != p.ID || s.Venue != "SOSP" || s.Year != 2012 || s.Citations != 7 || s.Country != "United States" {
		t.Errorf("summarize = %+v", s)
	}
}
