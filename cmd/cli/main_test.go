package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimalProject is the smallest document the compiler accepts: one page,
// default display config.
const minimalProject = `{
	"version": "1.0",
	"pages": {
		"main": {"id": "main", "name": "Main", "layout": "NONE", "scrollable": true, "is_default": true, "index": 0}
	},
	"widgets": {
		"main": [
			{"widget_type": "label", "id": "hello", "text": "Hello"}
		]
	}
}`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CompilesProjectToFile(t *testing.T) {
	t.Parallel()

	projectPath := writeProject(t, minimalProject)
	outputPath := filepath.Join(t.TempDir(), "display.yaml")
	out := &bytes.Buffer{}

	err := run(out, []string{"-o", outputPath, projectPath})
	require.NoError(t, err)

	compiled, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(compiled), "lvgl:")
	require.Contains(t, string(compiled), "id: hello")
}

func TestRun_CompilesProjectToStdout(t *testing.T) {
	t.Parallel()

	projectPath := writeProject(t, minimalProject)
	out := &bytes.Buffer{}

	err := run(out, []string{projectPath})
	require.NoError(t, err)
	require.Contains(t, out.String(), "lvgl:")
}

func TestRun_RejectsMalformedProject(t *testing.T) {
	t.Parallel()

	projectPath := writeProject(t, `{"pages": {}}`)
	out := &bytes.Buffer{}

	err := run(out, []string{projectPath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load project")
	require.Contains(t, err.Error(), `"version"`)
}

func TestRun_SummaryReport(t *testing.T) {
	t.Parallel()

	projectPath := writeProject(t, minimalProject)
	out := &bytes.Buffer{}

	err := run(out, []string{"-validate", "-summary", projectPath})
	require.NoError(t, err)
	require.Contains(t, out.String(), "# Project Summary")
	require.Contains(t, out.String(), "- main (home): 1 widget(s)")
}