package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/lvforge/internal/compiler"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigRequiresProjectPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{ProjectPath: "p.json", ValidateOnly: true, OutputPath: "out.yaml"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ProjectPath: "p.json"})
	require.NoError(t, err)
	assert.Equal(t, "p.json", cfg.ProjectPath)
}

func TestRunValidateOnlyReportsBatchedDiagnostics(t *testing.T) {
	// An image widget without its required src, plus a navigate to a page
	// that does not exist: both must surface in one run.
	project := `{
		"version": "1.0",
		"pages": {
			"main": {"id": "main", "name": "Main", "layout": "NONE", "index": 0, "is_default": true}
		},
		"widgets": {
			"main": [
				{"widget_type": "image", "id": "img1"},
				{"widget_type": "button", "id": "btn1", "actions": [
					{"trigger": "on_click", "effects": [{"kind": "navigate", "target_page": "ghost"}]}
				]}
			]
		}
	}`

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ProjectPath: writeProject(t, project), ValidateOnly: true, LogLevel: "error"})
	require.NoError(t, err)

	runErr := NewApp(out, cfg).Run(context.Background(), cfg)
	require.Error(t, runErr)

	var errs compiler.Errors
	require.ErrorAs(t, runErr, &errs)
	require.Len(t, errs, 2)
	assert.Contains(t, runErr.Error(), "2 error(s) found")
}

func TestRunWritesCompiledDocument(t *testing.T) {
	project := `{
		"version": "1.0",
		"display_config": {"width": 480, "height": 320, "color_depth": 16, "buffer_percent": 50},
		"pages": {
			"main": {"id": "main", "name": "Main", "layout": "NONE", "scrollable": true, "index": 0, "is_default": true}
		}
	}`

	out := &bytes.Buffer{}
	outputPath := filepath.Join(t.TempDir(), "display.yaml")
	cfg, err := NewConfig(Config{
		ProjectPath: writeProject(t, project),
		OutputPath:  outputPath,
		LogLevel:    "error",
	})
	require.NoError(t, err)

	require.NoError(t, NewApp(out, cfg).Run(context.Background(), cfg))

	compiled, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(compiled), "width: 480")
	assert.Contains(t, string(compiled), "buffer_size: 50%")
}
