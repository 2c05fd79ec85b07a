package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/strcalc/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Arguments(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "sum", args: []string{"1,2"}, wantCode: exitOK, wantStdout: "3\n"},
		{name: "empty input", args: []string{""}, wantCode: exitOK, wantStdout: "0\n"},
		{name: "escaped newline", args: []string{`1\n2,3`}, wantCode: exitOK, wantStdout: "6\n"},
		{name: "custom delimiter", args: []string{`//;\n1;2`}, wantCode: exitOK, wantStdout: "3\n"},
		{name: "several inputs", args: []string{"1,2", "1\\n2,3000"}, wantCode: exitOK, wantStdout: "3\n3\n"},
		{name: "negative", args: []string{"--", "1,-2"}, wantCode: exitError, wantStderr: "error: Negative numbers: -2\n"},
		{name: "raw keeps escapes", args: []string{"--raw", `1\n2`}, wantCode: exitError, wantStderr: "invalid number"},
		{name: "no input", args: nil, wantCode: exitUsage, wantStderr: "no input"},
		{name: "bad log level", args: []string{"--log-level", "loud", "1"}, wantCode: exitUsage, wantStderr: "invalid --log-level"},
		{name: "output without suite", args: []string{"-o", "x.json", "1"}, wantCode: exitUsage, wantStderr: "--output requires --suite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tt.args...)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_PartialFailureKeepsGoing(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "--", "1,a", "2,2")

	assert.Equal(t, exitError, code)
	assert.Equal(t, "4\n", stdout)
	assert.Contains(t, stderr, `invalid number "a"`)
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, _ := runCLI(t, "//;\n1;2\n", "--stdin")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3\n", stdout)
}

func TestRun_Verbose(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "-v", `//;\n1;2000`)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `delimiters: "," "\n" ";"`)
	assert.Contains(t, stdout, "numbers:    [1 2000]")
	assert.Contains(t, stdout, "ignored:    [2000]")
	assert.Contains(t, stdout, "sum:        1")
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--help")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "--suite")
}

func TestRun_Suite(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "suite.yaml")
	outPath := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(suitePath, []byte(`
name: cli
cases:
  - id: sum
    input: "1,2"
    want: 3
  - id: neg
    input: "1,-2"
    want_error: validation
`), 0644))

	code, stdout, _ := runCLI(t, "", "--suite", suitePath, "--output", outPath)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "=== Suite: cli ===")
	assert.Contains(t, stdout, "Passed 2/2")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var res suite.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, 2, res.Summary.Passed)
}

func TestRun_SuiteFailure(t *testing.T) {
	suitePath := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(suitePath, []byte("name: f\ncases:\n  - input: \"1,2\"\n    want: 4\n"), 0644))

	code, stdout, _ := runCLI(t, "", "-s", suitePath)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "FAIL")
}

func TestRun_SuiteMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--suite", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "read suite file")
}
