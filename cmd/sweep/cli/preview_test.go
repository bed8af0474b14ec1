package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\nprint(x)  # debug\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runPreview(&out, []string{path}))

	got := out.String()
	assert.Contains(t, got, path+":2:1-2:9\tprint\tprint(x)")
	assert.Contains(t, got, "comment\t# debug")

	// Preview never modifies the file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\nprint(x)  # debug\n", string(data))
}

func TestRunPreview_CleanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(path, []byte("work();\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runPreview(&out, []string{path}))

	assert.Contains(t, out.String(), "Nothing to remove.")
}

func TestRunPreview_NoArgs(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, runPreview(&out, nil))
}

func TestRunPreview_MultilineTokenShowsFirstLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.c")
	require.NoError(t, os.WriteFile(path, []byte("/* first\n   second */\nint x;\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runPreview(&out, []string{path}))

	got := out.String()
	assert.Contains(t, got, "comment\t/* first")
	assert.NotContains(t, got, "second */")
}
