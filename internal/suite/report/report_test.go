package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/strcalc/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *suite.Result {
	three := 3
	return &suite.Result{
		Name: "kata",
		Cases: []suite.CaseResult{
			{ID: "sum", Input: "1,2", Got: &three, Passed: true},
			{ID: "neg", Input: "1,-2", Err: "Negative numbers: -2", Kind: "validation", Reason: "want 3, got validation error: Negative numbers: -2"},
		},
		Summary: suite.Summary{Total: 2, Passed: 1, Failed: 1, PassRate: 50},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(sampleResult(), &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Suite: kata ===")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, `"1,-2"`)
	assert.Contains(t, out, "validation error")
	assert.Contains(t, out, "Passed 1/2 (50.00%), failed 1")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got suite.Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "kata", got.Name)
	assert.Equal(t, 1, got.Summary.Failed)
	require.Len(t, got.Cases, 2)
	assert.Equal(t, 3, *got.Cases[0].Got)
	assert.Nil(t, got.Cases[1].Got)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(sampleResult(), filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
}
