package scancode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MinimalDocument(t *testing.T) {
	doc, err := Parse([]byte(`{
		"headers": [{
			"tool_name": "scancode-toolkit",
			"tool_version": "30.1.0",
			"start_timestamp": "2023-03-07T183602.245015",
			"end_timestamp": "2023-03-07T183622.397184",
			"options": {"input": ["/scan/root"]}
		}],
		"files": []
	}`))

	require.NoError(t, err)
	require.Len(t, doc.Headers, 1)
	assert.Equal(t, "scancode-toolkit", doc.Headers[0].ToolName)
	assert.Equal(t, StringList{"/scan/root"}, doc.Headers[0].Options.Input)
	assert.Empty(t, doc.Files)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResult)
}

func TestDocument_Header_ExactlyOne(t *testing.T) {
	doc := &Document{Headers: []Header{{ToolName: "scancode-toolkit"}}}

	header, err := doc.Header()

	require.NoError(t, err)
	assert.Equal(t, "scancode-toolkit", header.ToolName)
}

func TestDocument_Header_ZeroHeaders(t *testing.T) {
	doc := &Document{}

	_, err := doc.Header()

	assert.ErrorIs(t, err, ErrMalformedResult)
}

func TestDocument_Header_MultipleHeaders(t *testing.T) {
	doc := &Document{Headers: []Header{{}, {}}}

	_, err := doc.Header()

	assert.ErrorIs(t, err, ErrMalformedResult)
}

func TestHeader_StartTime(t *testing.T) {
	header := &Header{StartTimestamp: "2023-03-07T183602.245015"}

	start, err := header.StartTime()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 7, 18, 36, 2, 245015000, time.UTC), start)
}

func TestHeader_StartTime_NoFraction(t *testing.T) {
	header := &Header{StartTimestamp: "2023-03-07T183602"}

	start, err := header.StartTime()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 7, 18, 36, 2, 0, time.UTC), start)
}

func TestHeader_Timestamps_Missing(t *testing.T) {
	header := &Header{}

	_, err := header.StartTime()
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	_, err = header.EndTime()
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestHeader_Timestamps_WrongFormat(t *testing.T) {
	header := &Header{StartTimestamp: "2023-03-07 18:36:02"}

	_, err := header.StartTime()

	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestStringList_AcceptsScalar(t *testing.T) {
	doc, err := Parse([]byte(`{
		"headers": [{"options": {"input": "/scan/root"}}],
		"files": []
	}`))

	require.NoError(t, err)
	assert.Equal(t, StringList{"/scan/root"}, doc.Headers[0].Options.Input)
}

func TestStringList_RejectsObject(t *testing.T) {
	_, err := Parse([]byte(`{
		"headers": [{"options": {"input": {"path": "/scan/root"}}}],
		"files": []
	}`))

	assert.Error(t, err)
}
