package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.col")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRun_ExitCodes(t *testing.T) {
	good := writeGraph(t, "e 1 2 3.0\ne 2 3 1.0\ne 1 3 5.0\n")
	loops := writeGraph(t, "e 1 1\ne 2 2 4\n")
	missing := filepath.Join(t.TempDir(), "missing.col")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, exitUsage},
		{"one arg", []string{good}, exitUsage},
		{"extra arg", []string{good, "greedy", "more"}, exitUsage},
		{"mst flag without algorithm", []string{good, "--mst"}, exitUsage},
		{"unknown flag", []string{good, "greedy", "--colour"}, exitUsage},
		{"bad repeat", []string{good, "greedy", "--repeat", "0"}, exitUsage},
		{"unknown algorithm", []string{good, "xyz"}, exitAlgorithm},
		{"unknown algorithm before load", []string{missing, "xyz"}, exitAlgorithm},
		{"missing file", []string{missing, "greedy"}, exitFailure},
		{"self loops only", []string{loops, "dsatur"}, exitFailure},
		{"bad log level", []string{good, "greedy", "--log-level", "loud"}, exitFailure},
		{"brute over limit", []string{good, "brute", "--limit", "2"}, exitFailure},
		{"greedy", []string{good, "greedy"}, exitOK},
		{"mst selector", []string{good, "mst"}, exitOK},
		{"mst flag", []string{good, "welsh", "--mst", "--verify"}, exitOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.want, got, "stderr: %s", stderr.String())
			if tc.want != exitOK {
				assert.Contains(t, stderr.String(), "Error: ")
			}
		})
	}
}

func TestRun_Output(t *testing.T) {
	path := writeGraph(t, "e 1 2 3.0\ne 2 3 1.0\ne 1 3 5.0\n")

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{path, "mst"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Prim total weight: 4 ")
	assert.Contains(t, stdout.String(), "Kruskal total weight: 4 ")

	stdout.Reset()
	require.Equal(t, exitOK, run([]string{path, "dsatur"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Colors used: 3\n")
	assert.Contains(t, stdout.String(), "Valid coloring: yes\n")
}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "path.txt"), []byte("1 2\n2 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loops.txt"), []byte("1 1\n"), 0o644))
	csvPath := filepath.Join(t.TempDir(), "batch.csv")

	var stdout, stderr bytes.Buffer
	got := run([]string{"--batch", dir, "--output", csvPath}, &stdout, &stderr)
	require.Equal(t, exitOK, got, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Error reading loops.txt")
	assert.Contains(t, stdout.String(), "--- path.txt (3 vertices) ---")
	assert.FileExists(t, csvPath)

	stderr.Reset()
	assert.Equal(t, exitFailure, run([]string{"--batch", filepath.Join(dir, "absent")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Error: ")

	assert.Equal(t, exitUsage, run([]string{"--batch", dir, "graph.txt"}, &stdout, &stderr))
}
