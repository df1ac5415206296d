package country

import "testing"

func TestInfer(t *testing.T) {
	inf := Default()

	tests := []struct {
		name        string
		affiliation string
		want        string
	}{
		{"institution name", "MIT CSAIL", "United States"},
		{"city name", "Technical University of Munich", "Germany"},
		{"country name", "National University of Singapore", "Singapore"},
		{"case insensitive", "TSINGHUA UNIVERSITY", "China"},
		{"chinese keyword", "清华大学", "China"},
		{"substring hit", "Some Lab, ETH Zurich, Dept. of CS", "Switzerland"},
		{"no match", "University of Nowhere", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inf.Infer(tt.affiliation)
			if got != tt.want {
				t.Errorf("Infer(%q) = %q, want %q", tt.affiliation, got, tt.want)
			}
		})
	}
}

func TestInferTableOrderWins(t *testing.T) {
	inf := New([]Rule{
		{Country: "First", Keywords: []string{"shared"}},
		{Country: "Second", Keywords: []string{"shared"}},
	})
	if got := inf.Infer("A Shared Institute"); got != "First" {
		t.Errorf("Infer = %q, want first rule in table order", got)
	}
}

func TestInferFirst(t *testing.T) {
	inf := Default()

	got := inf.InferFirst(
		[]string{"Unknown Org", "Another Unknown"},
		[]string{"University of Toronto"},
		[]string{"Stanford University"},
	)
	if got != "Canada" {
		t.Errorf("InferFirst = %q, want %q (first non-empty in scan order)", got, "Canada")
	}

	if got := inf.InferFirst([]string{"Unknown Org"}); got != "" {
		t.Errorf("InferFirst = %q, want empty for no matches", got)
	}
}
