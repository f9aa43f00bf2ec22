// Package spdx provides the small SPDX utilities the normalizer builds
// on: short-identifier validation, token substitution inside license
// expressions, and license/exception association.
package spdx

import "strings"

// LicenseRefPrefix is the SPDX namespace prefix for license identifiers
// that are not part of the standard identifier list.
const LicenseRefPrefix = "LicenseRef-"

// NoAssertion is the SPDX expression stating that no license assertion
// can be made.
const NoAssertion = "NOASSERTION"

// ToIdentifier validates and normalizes a free-text token into an SPDX
// short identifier. It returns the empty string if the token is not a
// valid identifier. When allowPlusSuffix is true a single trailing "+"
// operator is accepted.
func ToIdentifier(s string, allowPlusSuffix bool) string {
	id := strings.TrimSpace(s)
	if allowPlusSuffix {
		id = strings.TrimSuffix(id, "+")
	}

	if id == "" || !isIdentifier(id) {
		return ""
	}

	return strings.TrimSpace(s)
}

// LicenseRef builds a deterministic namespaced fallback identifier for a
// scanner rule key that does not resolve to a standard SPDX identifier.
// The same namespace and key always yield the same identifier.
func LicenseRef(namespace, key string) string {
	return LicenseRefPrefix + namespace + "-" + sanitize(key)
}

// isIdentifier reports whether s consists solely of characters allowed
// in SPDX short identifiers.
func isIdentifier(s string) bool {
	for _, r := range s {
		if !isIdentifierRune(r) {
			return false
		}
	}
	return true
}

func isIdentifierRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '.':
		return true
	default:
		return false
	}
}

// sanitize turns an arbitrary token into an identifier-safe one by
// replacing every run of disallowed characters with a single dash.
func sanitize(s string) string {
	var b strings.Builder
	lastWasDash := false

	for _, r := range strings.TrimSpace(s) {
		if isIdentifierRune(r) {
			b.WriteRune(r)
			lastWasDash = r == '-'
			continue
		}
		if !lastWasDash {
			b.WriteRune('-')
			lastWasDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
