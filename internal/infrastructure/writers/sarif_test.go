package writers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSARIFWriter_ProducesValidReport(t *testing.T) {
	var buf bytes.Buffer
	w := NewSARIFWriter(WithSARIFOutput(&buf))

	require.NoError(t, w.Write(testSummary()))

	var report map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "2.1.0", report["version"])

	runs := report["runs"].([]any)
	require.Len(t, runs, 1)

	run := runs[0].(map[string]any)
	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	assert.Equal(t, "scanlens", driver["name"])

	// One result per license finding plus one per issue.
	results := run["results"].([]any)
	assert.Len(t, results, 4)
}

func TestSARIFWriter_IssueSeverityMapsToLevel(t *testing.T) {
	var buf bytes.Buffer
	w := NewSARIFWriter(WithSARIFOutput(&buf))

	require.NoError(t, w.Write(testSummary()))

	var report map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	levels := make(map[string]int)
	run := report["runs"].([]any)[0].(map[string]any)
	for _, r := range run["results"].([]any) {
		levels[r.(map[string]any)["level"].(string)]++
	}

	assert.Equal(t, 2, levels["note"])    // license findings
	assert.Equal(t, 1, levels["error"])   // scan error issue
	assert.Equal(t, 1, levels["warning"]) // version warning issue
}
