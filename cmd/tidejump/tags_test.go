package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree with an isolated config and log file.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	rootCmd, c := newRootCmd()
	t.Cleanup(c.close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--logfile", filepath.Join(dir, "test.log"),
	}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTags_GoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	out, err := runCLI(t, "", "tags", "--color", "off", path)
	require.NoError(t, err)
	assert.Equal(t, "aackage abin\n\naa   1:1\nab   1:9\n", out)
}

func TestTags_Stdin(t *testing.T) {
	out, err := runCLI(t, "alpha beta\n", "tags", "--color", "off")
	require.NoError(t, err)
	assert.Equal(t, "aapha abta\n\naa   1:1\nab   1:7\n", out)
}

func TestTags_LineMode(t *testing.T) {
	out, err := runCLI(t, "one\ntwo\n", "tags", "--color", "off", "--line")
	require.NoError(t, err)
	assert.Equal(t, "ane\nswo\n\na    1:1\ns    2:1\n", out)
}

func TestTags_LineModeStartsAtCursor(t *testing.T) {
	out, err := runCLI(t, "one\ntwo\n", "tags", "--color", "off", "--line", "--cursor-line", "2")
	require.NoError(t, err)
	assert.Equal(t, "one\nawo\n\na    2:1\n", out)
}

func TestTags_LineWindow(t *testing.T) {
	out, err := runCLI(t, "alpha\nbeta\ngamma\n", "tags", "--color", "off", "--from", "2", "--to", "2")
	require.NoError(t, err)
	assert.Equal(t, "alpha\naata\ngamma\n\naa   2:1\n", out)
}

func TestTags_AlphabetFlag(t *testing.T) {
	out, err := runCLI(t, "alpha beta gamma\n", "tags", "--color", "off", "--alphabet", "xy")
	require.NoError(t, err)
	assert.Equal(t, "xxpha xyta yxxma\n\nxx   1:1\nxy   1:7\nyxx  1:12\n", out)
}

func TestTags_Errors(t *testing.T) {
	_, err := runCLI(t, "", "tags", filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)

	_, err = runCLI(t, "x", "tags", "--color", "sometimes")
	assert.Error(t, err)

	_, err = runCLI(t, "x", "tags", "--language", "cobol")
	assert.Error(t, err)

	_, err = runCLI(t, "x", "tags", "--alphabet", "a")
	assert.Error(t, err)

	_, err = runCLI(t, "x\ny\n", "tags", "--from", "7")
	assert.Error(t, err, "window past the end of input")
}

func TestLineRange(t *testing.T) {
	cases := []struct {
		from, to, count int
		start, end      int
	}{
		{1, 0, 5, 0, 5},
		{2, 3, 5, 1, 3},
		{0, 9, 5, 0, 5},
		{4, 2, 5, 1, 4},
		{9, 0, 5, 5, 5},
	}
	for _, tc := range cases {
		r := lineRange(tc.from, tc.to, tc.count)
		assert.Equal(t, tc.start, r.Start, "from=%d to=%d", tc.from, tc.to)
		assert.Equal(t, tc.end, r.End, "from=%d to=%d", tc.from, tc.to)
	}
}
