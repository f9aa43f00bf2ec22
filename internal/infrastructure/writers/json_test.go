package writers

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osscompliance/scanlens/internal/domain/finding"
	"github.com/osscompliance/scanlens/internal/domain/issue"
	"github.com/osscompliance/scanlens/internal/domain/summary"
)

func testSummary() *summary.Summary {
	return summary.New(
		time.Date(2023, 3, 7, 18, 36, 2, 0, time.UTC),
		time.Date(2023, 3, 7, 18, 36, 22, 0, time.UTC),
		[]finding.LicenseFinding{
			finding.NewLicenseFinding("Apache-2.0", finding.NewTextLocation("LICENSE", 1, 201), 100),
			finding.NewLicenseFinding("MIT", finding.NewTextLocation("src/a.c", 1, 3), 99),
		},
		[]finding.CopyrightFinding{
			finding.NewCopyrightFinding("Copyright (c) 2023 ACME Inc.", finding.NewTextLocation("LICENSE", 189, 189)),
		},
		[]issue.Issue{
			issue.New("ScanCode", "boom (File: src/b.c)"),
			issue.New("ScanCode", "version mismatch", issue.WithSeverity(issue.SeverityWarning)),
		},
	)
}

func TestJSONWriter_WritesEnvelope(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(
		WithJSONOutput(&buf),
		WithJSONToolInfo("scanlens", "1.2.3"),
	)

	require.NoError(t, w.Write(testSummary()))

	var report map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	tool := report["tool"].(map[string]any)
	assert.Equal(t, "scanlens", tool["name"])
	assert.Equal(t, "1.2.3", tool["version"])
	assert.NotEmpty(t, report["run_id"])
	assert.NotEmpty(t, report["generated_at"])

	s := report["summary"].(map[string]any)
	assert.Len(t, s["license_findings"].([]any), 2)
	assert.Len(t, s["copyright_findings"].([]any), 1)
	assert.Len(t, s["issues"].([]any), 2)
}

func TestJSONWriter_RunIDsAreUnique(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, NewJSONWriter(WithJSONOutput(&first)).Write(testSummary()))
	require.NoError(t, NewJSONWriter(WithJSONOutput(&second)).Write(testSummary()))

	var a, b map[string]any
	require.NoError(t, json.Unmarshal(first.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Bytes(), &b))

	assert.NotEqual(t, a["run_id"], b["run_id"])
}
