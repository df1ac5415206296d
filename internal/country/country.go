// Package country infers a country from an affiliation string using an
// ordered keyword table. Matching is a best-effort substring lookup with no
// confidence score; the first rule in table order that hits wins.
package country

import "strings"

// Rule maps one country to the keywords that identify it: institution
// names, city names, and country names, in English and Chinese.
type Rule struct {
	Country  string
	Keywords []string
}

// Inferrer performs keyword-table country lookups. The zero value is not
// usable; construct with New.
type Inferrer struct {
	rules []Rule
}

// New builds an Inferrer from an ordered rule table. Earlier rules take
// precedence when several match.
func New(rules []Rule) *Inferrer {
	return &Inferrer{rules: rules}
}

// Default returns an Inferrer loaded with the built-in rule table.
func Default() *Inferrer {
	return New(DefaultRules())
}

// Infer returns the first country whose keywords appear in the affiliation,
// or "" when nothing matches. Matching is case-insensitive.
func (inf *Inferrer) Infer(affiliation string) string {
	if affiliation == "" {
		return ""
	}
	lower := strings.ToLower(affiliation)
	for _, rule := range inf.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Country
			}
		}
	}
	return ""
}

// InferFirst scans affiliation lists in the order given and returns the
// first non-empty inference. Used to derive a paper-level country from its
// authors in byline order.
func (inf *Inferrer) InferFirst(affiliationLists ...[]string) string {
	for _, list := range affiliationLists {
		for _, affiliation := range list {
			if c := inf.Infer(affiliation); c != "" {
				return c
			}
		}
	}
	return ""
}

// DefaultRules returns the built-in country keyword table. Keywords are
// stored lowercase; table order is significant.
func DefaultRules() []Rule {
	return []Rule{
		{Country: "China", Keywords: []string{
			"china", "chinese", "beijing", "shanghai", "tsinghua", "peking",
			"fudan", "zhejiang", "nju", "nankai", "tianjin", "中", "清华", "北大",
			"北航", "中科院", "cas", "harbin", "xi'an", "xian",
		}},
		{Country: "United States", Keywords: []string{
			"united states", "usa", "mit", "stanford", "berkeley", "caltech",
			"carnegie mellon", "cmu", "harvard", "yale", "princeton", "cornell",
			"georgia tech", "gatech", "utexas", "texas", "michigan", "washington",
			"university of california", "uc ", "uc-", "ucberkeley",
		}},
		{Country: "United Kingdom", Keywords: []string{
			"united kingdom", "uk", "england", "cambridge", "oxford", "imperial",
			"ucl", "university college london", "edinburgh", "manchester",
		}},
		{Country: "Germany", Keywords: []string{
			"germany", "german", "munich", "berlin", "tum", "tu berlin",
			"max planck", "saarland", "karlsruhe",
		}},
		{Country: "France", Keywords: []string{
			"france", "french", "paris", "inria", "ens", "cnrs",
		}},
		{Country: "Japan", Keywords: []string{
			"japan", "japanese", "tokyo", "kyoto", "osaka", "nagoya",
		}},
		{Country: "Switzerland", Keywords: []string{
			"switzerland", "swiss", "eth zurich", "epfl", "lausanne",
		}},
		{Country: "Canada", Keywords: []string{
			"canada", "canadian", "toronto", "waterloo", "ubc", "mcgill",
		}},
		{Country: "Singapore", Keywords: []string{
			"singapore", "nus", "national university of singapore", "ntu",
		}},
		{Country: "South Korea", Keywords: []string{
			"korea", "korean", "seoul", "kaist", "postech",
		}},
	}
}
