// Package dblp fetches publication records from the DBLP search API.
package dblp

import "encoding/json"

// searchResponse is the top-level DBLP search API response.
type searchResponse struct {
	Result struct {
		Hits struct {
			Hit hitList `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

// Hit is one search result.
type Hit struct {
	ID   string `json:"@id"`
	Info Info   `json:"info"`
}

// Info carries the bibliographic fields of a hit.
type Info struct {
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	Venue     string     `json:"venue"`
	BookTitle string     `json:"booktitle"`
	Year      string     `json:"year"` // DBLP returns the year as a string
	DOI       string     `json:"doi"`
	EE        string     `json:"ee"` // Electronic edition URL
	URL       string     `json:"url"`
	Authors   authorsObj `json:"authors"`
}

// hitList tolerates DBLP returning a single hit as a bare object instead of
// an array.
type hitList []Hit

func (h *hitList) UnmarshalJSON(data []byte) error {
	var list []Hit
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}
	var single Hit
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*h = hitList{single}
	return nil
}

// authorsObj wraps the "authors" field, whose inner "author" entry may be a
// string, an object, or an array of either.
type authorsObj struct {
	Author authorList `json:"author"`
}

// AuthorEntry is one author, either a bare name string or an object with a
// persistent ID.
type AuthorEntry struct {
	PID  string `json:"@pid"`
	Text string `json:"text"`
}

func (a *AuthorEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Text = s
		return nil
	}

	type entry AuthorEntry // Avoid recursing into this method
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	*a = AuthorEntry(e)
	return nil
}

type authorList []AuthorEntry

func (l *authorList) UnmarshalJSON(data []byte) error {
	var list []AuthorEntry
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single AuthorEntry
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = authorList{single}
	return nil
}
