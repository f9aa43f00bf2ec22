package spdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceLicenseKeys_EmptyMapReturnsInput(t *testing.T) {
	expression := "gpl-2.0 OR mit"

	assert.Equal(t, expression, ReplaceLicenseKeys(expression, nil))
	assert.Equal(t, expression, ReplaceLicenseKeys(expression, map[string]string{}))
}

func TestReplaceLicenseKeys_SubstitutesTokens(t *testing.T) {
	replacements := map[string]string{
		"gpl-2.0": "GPL-2.0-only",
		"mit":     "MIT",
	}

	result := ReplaceLicenseKeys("gpl-2.0 OR mit", replacements)

	assert.Equal(t, "GPL-2.0-only OR MIT", result)
}

func TestReplaceLicenseKeys_PreservesOperatorsAndParens(t *testing.T) {
	replacements := map[string]string{
		"apache-2.0":              "Apache-2.0",
		"classpath-exception-2.0": "Classpath-exception-2.0",
		"gpl-2.0":                 "GPL-2.0-only",
	}

	result := ReplaceLicenseKeys("apache-2.0 AND (gpl-2.0 WITH classpath-exception-2.0)", replacements)

	assert.Equal(t, "Apache-2.0 AND (GPL-2.0-only WITH Classpath-exception-2.0)", result)
}

func TestReplaceLicenseKeys_OnlyWholeTokens(t *testing.T) {
	replacements := map[string]string{"mit": "MIT"}

	// "mit-cmu" contains "mit" as a prefix but is a different token.
	result := ReplaceLicenseKeys("mit OR mit-cmu", replacements)

	assert.Equal(t, "MIT OR mit-cmu", result)
}

func TestReplaceLicenseKeys_UnknownTokensKept(t *testing.T) {
	replacements := map[string]string{"mit": "MIT"}

	result := ReplaceLicenseKeys("mit AND zlib", replacements)

	assert.Equal(t, "MIT AND zlib", result)
}

func TestReplaceLicenseKeys_OperatorsNeverReplaced(t *testing.T) {
	replacements := map[string]string{"AND": "broken", "mit": "MIT"}

	result := ReplaceLicenseKeys("mit AND mit", replacements)

	assert.Equal(t, "MIT AND MIT", result)
}
