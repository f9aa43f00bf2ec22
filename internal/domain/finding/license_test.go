package finding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortLicenseFindings_DeduplicatesAndSorts(t *testing.T) {
	findings := []LicenseFinding{
		NewLicenseFinding("MIT", NewTextLocation("b.c", 1, 1), 100),
		NewLicenseFinding("Apache-2.0", NewTextLocation("a.c", 5, 9), 95),
		NewLicenseFinding("MIT", NewTextLocation("b.c", 1, 1), 100),
		NewLicenseFinding("Apache-2.0", NewTextLocation("a.c", 1, 4), 100),
	}

	result := SortLicenseFindings(findings)

	require.Len(t, result, 3)
	assert.Equal(t, NewTextLocation("a.c", 1, 4), result[0].Location())
	assert.Equal(t, NewTextLocation("a.c", 5, 9), result[1].Location())
	assert.Equal(t, NewTextLocation("b.c", 1, 1), result[2].Location())
}

func TestSortLicenseFindings_ScoreDistinguishesFindings(t *testing.T) {
	location := NewTextLocation("a.c", 1, 4)
	findings := []LicenseFinding{
		NewLicenseFinding("MIT", location, 100),
		NewLicenseFinding("MIT", location, 50),
	}

	result := SortLicenseFindings(findings)

	require.Len(t, result, 2)
	assert.Equal(t, 50.0, result[0].Score())
	assert.Equal(t, 100.0, result[1].Score())
}

func TestSortCopyrightFindings_Deduplicates(t *testing.T) {
	location := NewTextLocation("a.c", 1, 1)
	findings := []CopyrightFinding{
		NewCopyrightFinding("Copyright (c) 2024 ACME", location),
		NewCopyrightFinding("Copyright (c) 2024 ACME", location),
	}

	assert.Len(t, SortCopyrightFindings(findings), 1)
}

func TestNewLicenseFinding_TrimsExpression(t *testing.T) {
	f := NewLicenseFinding("  MIT  ", NewTextLocation("a.c", 1, 1), 100)
	assert.Equal(t, "MIT", f.License())
}
