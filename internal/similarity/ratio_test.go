package similarity

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "spanner", "spanner", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "spanner", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		// "abcd" vs "bcde": longest run "bcd" (3 chars), 2*3/8.
		{"partial overlap", "abcd", "bcde", 0.75},
		// Matching runs "ab" and "cd" on both sides of a substitution.
		{"split runs", "abxcd", "abycd", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioSymmetricRange(t *testing.T) {
	pairs := [][2]string{
		{"spanner googles globally distributed database", "spanner googles globallydistributed database"},
		{"the design of a practical system", "a practical system design"},
		{"mapreduce", "bigtable"},
	}
	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		if ab < 0 || ab > 1 {
			t.Errorf("Ratio(%q, %q) = %v, out of [0,1]", p[0], p[1], ab)
		}
	}
}

func TestRatioOrdersExactAbovePartial(t *testing.T) {
	target := "spanner googles globally distributed database"
	exact := Ratio(target, target)
	partial := Ratio(target, "spanner a distributed database")
	if exact <= partial {
		t.Errorf("exact match ratio %v not above partial %v", exact, partial)
	}
}
