package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osscompliance/scanlens/internal/domain/summary"
)

func TestConsoleWriter_CompactOverview(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(
		WithConsoleOutput(&buf),
		WithConsoleColor(false),
	)

	require.NoError(t, w.Write(testSummary()))

	out := buf.String()
	assert.Contains(t, out, "Scan summary")
	assert.Contains(t, out, "Licenses (2 findings)")
	assert.Contains(t, out, "Apache-2.0 (1)")
	assert.Contains(t, out, "Copyrights (1 findings)")
	assert.Contains(t, out, "Issues (2)")
	assert.Contains(t, out, "[ERROR] ScanCode: boom (File: src/b.c)")
	assert.Contains(t, out, "[WARNING] ScanCode: version mismatch")
}

func TestConsoleWriter_VerboseListsFindings(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(
		WithConsoleOutput(&buf),
		WithConsoleColor(false),
		WithConsoleVerbose(true),
	)

	require.NoError(t, w.Write(testSummary()))

	out := buf.String()
	assert.Contains(t, out, "LICENSE:1-201")
	assert.Contains(t, out, "score 100.0")
	assert.Contains(t, out, "Copyright (c) 2023 ACME Inc.")
}

func TestConsoleWriter_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(
		WithConsoleOutput(&buf),
		WithConsoleColor(false),
	)

	s := summary.New(testSummary().StartTime(), testSummary().EndTime(), nil, nil, nil)
	require.NoError(t, w.Write(s))

	out := buf.String()
	assert.Contains(t, out, "No licenses detected.")
	assert.Contains(t, out, "No issues.")
}
