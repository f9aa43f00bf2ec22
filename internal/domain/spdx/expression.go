package spdx

import "strings"

// expression operators that must never be treated as identifier tokens.
var operators = map[string]struct{}{
	"AND":  {},
	"OR":   {},
	"WITH": {},
}

// ReplaceLicenseKeys substitutes identifier tokens inside an SPDX-style
// license expression according to the given replacement map. Boolean
// operators, parentheses and whitespace are preserved untouched; only
// whole tokens with an entry in the map are replaced. An empty map
// returns the expression unchanged.
func ReplaceLicenseKeys(expression string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return expression
	}

	var b strings.Builder
	var token strings.Builder

	flush := func() {
		if token.Len() == 0 {
			return
		}
		b.WriteString(replaceToken(token.String(), replacements))
		token.Reset()
	}

	for _, r := range expression {
		if isTokenRune(r) {
			token.WriteRune(r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}

// replaceToken maps a single token, leaving operators and unknown
// tokens alone.
func replaceToken(token string, replacements map[string]string) string {
	if _, ok := operators[token]; ok {
		return token
	}
	if replacement, ok := replacements[token]; ok && replacement != "" {
		return replacement
	}
	return token
}

// isTokenRune reports whether r can be part of an identifier token.
// The "+" operator binds to its identifier, so it is part of the token.
func isTokenRune(r rune) bool {
	return isIdentifierRune(r) || r == '+' || r == ':' || r == '_'
}
