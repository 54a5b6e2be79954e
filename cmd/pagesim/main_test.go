package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/djdv/go-pagesim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classic = "1,2,3,4,1,2,5,1,2,3,4,5"

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunReport(t *testing.T) {
	code, stdout, stderr := runArgs(t,
		"-frames", "3", "-sequence", classic, "-log-level", "error")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"POLICY", "FAULTS", "HITS", "FAULT", "RATE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"FIFO", "9", "3", "75.00%"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"LRU", "10", "2", "83.33%"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Optimal", "7", "5", "58.33%"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"Clock", "9", "3", "75.00%"}, strings.Fields(lines[4]))
	assert.Empty(t, stderr)
}

func TestRunTrace(t *testing.T) {
	code, stdout, stderr := runArgs(t,
		"-frames", "1", "-sequence", "7 7 7", "-policies", "fifo", "-trace", "-sequential")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "FIFO trace: 1 1 1\n")
	assert.NotContains(t, stdout, "LRU")
	assert.Contains(t, stderr, "simulation complete")
}

func TestRunProgress(t *testing.T) {
	code, _, stderr := runArgs(t,
		"-frames", "2", "-sequence", "1,2,1", "-policies", "lru",
		"-progress", "-log-level", "debug")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 3, strings.Count(stderr, "[DEBU] reference "))
	assert.Contains(t, stderr, "step=3/3")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
frames = 3
sequence = [1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5]
policies = ["optimal"]
log_level = "error"
`), 0o600))
	code, stdout, stderr := runArgs(t, "-config", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Optimal")
	assert.NotContains(t, stdout, "FIFO")

	// Flags override the file.
	code, stdout, stderr = runArgs(t, "-config", path, "-policies", "lru")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "LRU")
	assert.NotContains(t, stdout, "Optimal")
}

func TestRunErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		code int
		want string
		args []string
	}{
		{"no frames", 1, pagesim.ErrInvalidCapacity.Error(), []string{"-sequence", "1"}},
		{"no sequence", 1, pagesim.ErrEmptySequence.Error(), []string{"-frames", "2"}},
		{"no policies", 1, pagesim.ErrNoPoliciesSelected.Error(), []string{"-frames", "2", "-sequence", "1", "-policies", ""}},
		{"bad policy", 2, pagesim.ErrUnknownPolicy.Error(), []string{"-policies", "mru"}},
		{"bad sequence", 2, "reference 1", []string{"-sequence", "1,x"}},
		{"bad flag", 2, "flag provided but not defined", []string{"-bogus"}},
		{"extra args", 2, "unexpected arguments", []string{"-frames", "2", "extra"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(t, test.args...)
			assert.Equal(t, test.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, test.want)
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runArgs(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "-frames")
}
