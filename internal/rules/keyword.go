package rules

import "strings"

// KeywordRule filters text by term sets. Text matches when at least one
// Any term is present (or Any is empty), every All term is present, and
// no None term is present. An empty rule matches everything.
type KeywordRule struct {
	All           []string
	Any           []string
	CaseSensitive bool
	None          []string
}

// Empty reports whether the rule has no terms
func (k KeywordRule) Empty() bool {
	return len(clean(k.Any)) == 0 && len(clean(k.All)) == 0 && len(clean(k.None)) == 0
}

// Match applies the rule to text
func (k KeywordRule) Match(text string) bool {
	if !k.CaseSensitive {
		text = strings.ToLower(text)
	}
	contains := func(term string) bool {
		if !k.CaseSensitive {
			term = strings.ToLower(term)
		}
		return strings.Contains(text, term)
	}

	if anyTerms := clean(k.Any); len(anyTerms) > 0 {
		found := false
		for _, term := range anyTerms {
			if contains(term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, term := range clean(k.All) {
		if !contains(term) {
			return false
		}
	}
	for _, term := range clean(k.None) {
		if contains(term) {
			return false
		}
	}
	return true
}

// clean drops blank terms
func clean(terms []string) []string {
	out := terms[:0:0]
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
