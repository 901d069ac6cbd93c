package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	_, err := run(t, "example", path)
	require.NoError(t, err)
	return path
}

func TestExampleThenProject(t *testing.T) {
	dir := t.TempDir()
	path := writeExample(t, dir, "scenario.yaml")

	out, err := run(t, "project", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PROPERTY INVESTMENT ROADMAP: Three property roadmap")

	out, err = run(t, "project", "--format", "lite", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PROPERTY ROADMAP SUMMARY")

	out, err = run(t, "project", "-f", "json", path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Three property roadmap", doc["name"])
}

func TestProject_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeExample(t, dir, "scenario.yaml")

	_, err := run(t, "project", "--format", "pdf", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, err = run(t, "project", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "project")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	a := writeExample(t, dir, "alpha.yaml")
	b := writeExample(t, dir, "beta.yaml")
	outDir := filepath.Join(dir, "reports")

	_, err := run(t, "batch", "--out", outDir, "--format", "csv", a, b)
	require.NoError(t, err)

	for _, name := range []string{"alpha.csv", "beta.csv"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Year,AbsoluteYear,Status"))
	}
}

func TestConfigOverridesBaseYear(t *testing.T) {
	dir := t.TempDir()
	path := writeExample(t, dir, "scenario.yaml")
	settingsPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("engine:\n  base_year: 2030\n"), 0644))

	out, err := run(t, "--config", settingsPath, "project", "-f", "csv", path)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[1], "1,2030,"), lines[1])
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "roadmap dev")
}
