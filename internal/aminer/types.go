package aminer

type detailResponse struct {
	Code    int     `json:"code"`
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []Paper `json:"data"`
}

// Paper is an AMiner paper record, reduced to the fields we consume.
type Paper struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
	Year     int      `json:"year"`
	DOI      string   `json:"doi"`
	NCitaion int      `json:"n_citation"`
	Authors  []Author `json:"authors"`
	URLs     []string `json:"url"`
}

// Author is an AMiner author entry. Org carries the affiliation string.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Org  string `json:"org"`
}
