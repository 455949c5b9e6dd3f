package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig lays out an isolated data directory and returns the
// config file path to pass via --config.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	templatesDir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(templatesDir, 0o755))

	configPath := filepath.Join(root, "config.yaml")
	content := fmt.Sprintf(`
db_path: %s
templates_dir: %s
export_dir: %s
human_logs: false
`, filepath.Join(root, "brandforge.db"), templatesDir, filepath.Join(root, "exports"))
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	return configPath
}

func writeTestTemplate(t *testing.T, configPath string) {
	t.Helper()

	templateYAML := `
id: web_hero_split
name: Split hero
type: web_hero
slots:
  headline:
    type: text
  cta_text:
    type: cta
  image:
    type: image
style:
  layout: split
  background: colors.bg
  headline_color: colors.primary
`
	dir := filepath.Join(filepath.Dir(configPath), "templates")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web_hero_split.yaml"), []byte(templateYAML), 0o644))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTemplatesCommandListsCatalog(t *testing.T) {
	configPath := writeTestConfig(t)
	writeTestTemplate(t, configPath)

	out, err := runCommand(t, "templates", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "web_hero_split")
	assert.Contains(t, out, "Split hero")
	assert.Contains(t, out, "yes")
}

func TestTemplatesCommandFuzzyQuery(t *testing.T) {
	configPath := writeTestConfig(t)
	writeTestTemplate(t, configPath)

	out, err := runCommand(t, "templates", "--config", configPath, "--query", "zzzz-no-match")
	require.NoError(t, err)
	assert.Contains(t, out, "No templates found.")
}

func TestBrandsListRequiresLogin(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, "brands", "list", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, "export", "d-1", "--config", configPath, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
