package utils

import (
	"regexp"
	"strings"
)

var stateCodeRe = regexp.MustCompile(`\b([A-Z]{2})\b`)

// Tokenize lower-cases a query, splits it on whitespace and drops
// tokens of length 2 or less ("in", "a", "TX" stays out of the lexical
// match on purpose).
func Tokenize(s string) []string {
	var tokens []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len(w) > 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// TitleCase capitalizes the first letter of every word. Used to turn a
// lower-cased city match ("san francisco") back into display form.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// StateCode returns the first standalone two-uppercase-letter token in
// s, or "" when none is present.
func StateCode(s string) string {
	m := stateCodeRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
