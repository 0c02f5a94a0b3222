package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elseano/ccft-pymarkdown/testutil"
)

const customTable = "# Title\n\n| Name | Items |\n|------|-------|\n| a | * one<br>* two |\n"
const cleanedTable = "# Title\n\n| Name | Items |\n|------|-------|\n| a | one<br> two |\n"

// fakeLinter reports one failure per file it is given and exits 1.
const fakeLinter = `linter:
  - sh
  - -c
  - 'printf "%s:5:1: MD013: Line length (line-length)\n" "$@"; exit 1'
  - fake-pymarkdown
`

const passingLinter = `linter: [sh, -c, 'exit 0', fake-pymarkdown]
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	testutil.UseTestLogger(t)

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := handleError(&stderr, root.ExecuteContext(context.Background()))

	return stdout.String(), stderr.String(), err
}

func setupProject(t *testing.T, settings string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"README.md":       customTable,
		"docs/guide.md":   customTable,
		"docs/notes.txt":  "* not markdown<br>* at all\n",
		".hidden/skip.md": customTable,
	})

	configPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(settings), 0o644))

	return dir, configPath
}

func TestCleanAndRestore(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n")
	before := testutil.ReadTree(t, dir)

	_, _, err := execute(t, "--config", configPath, "clean", dir)
	require.NoError(t, err)

	files := testutil.ReadTree(t, dir)
	assert.Equal(t, cleanedTable, files["README.md"])
	assert.Equal(t, cleanedTable, files["docs/guide.md"])
	assert.Equal(t, customTable, files["README.md.ccft-original"])
	assert.Equal(t, customTable, files["docs/guide.md.ccft-original"])
	assert.Equal(t, customTable, files[".hidden/skip.md"])
	assert.NotContains(t, files, ".hidden/skip.md.ccft-original")

	_, _, err = execute(t, "--config", configPath, "restore", dir)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestCleanTwiceReportsExistingBackup(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n")

	_, _, err := execute(t, "--config", configPath, "clean", dir)
	require.NoError(t, err)

	_, stderr, err := execute(t, "--config", configPath, "clean", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorBackupExists)
	assert.Contains(t, stderr, "already exists")
	assert.Contains(t, stderr, "Use `ccft-pymarkdown restore` to first restore the files to their original state.")
}

func TestCleanDryRun(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n")
	before := testutil.ReadTree(t, dir)

	_, _, err := execute(t, "--config", configPath, "clean", "--dry-run", dir)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestCleanFlagsOverrideSettings(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n")

	_, _, err := execute(t, "--config", configPath, "clean", "--exclusion", "none", dir)
	require.NoError(t, err)

	files := testutil.ReadTree(t, dir)
	assert.Equal(t, cleanedTable, files[".hidden/skip.md"])
}

func TestCleanRejectsNonMarkdown(t *testing.T) {
	dir, configPath := setupProject(t, "")

	_, _, err := execute(t, "--config", configPath, "clean", filepath.Join(dir, "docs", "notes.txt"))
	assert.ErrorIs(t, err, ErrorArg)

	_, _, err = execute(t, "--config", configPath, "clean", "--skip-errors", filepath.Join(dir, "docs", "notes.txt"))
	assert.NoError(t, err)
}

func TestInvalidFlagValues(t *testing.T) {
	dir, configPath := setupProject(t, "")

	_, _, err := execute(t, "--config", configPath, "clean", "--mode", "sideways", dir)
	assert.ErrorIs(t, err, ErrorArg)

	_, _, err = execute(t, "--config", configPath, "scan-all", "--format", "xml", dir)
	assert.ErrorIs(t, err, ErrorArg)

	_, _, err = execute(t, "--config", configPath, "clean", "--no-such-flag")
	assert.ErrorIs(t, err, ErrorArg)
}

func TestInvalidSettingsFile(t *testing.T) {
	dir, configPath := setupProject(t, "mode: sideways\n")

	_, _, err := execute(t, "--config", configPath, "clean", dir)
	assert.ErrorIs(t, err, ErrorArg)
}

func TestScanAllReportsFailuresAndRestores(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n"+fakeLinter)
	before := testutil.ReadTree(t, dir)

	stdout, _, err := execute(t, "--config", configPath, "scan-all", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorLint)

	assert.Contains(t, stdout, filepath.Join(dir, "README.md")+":5:1: MD013: Line length (line-length)")
	assert.Contains(t, stdout, filepath.Join(dir, "docs", "guide.md")+":5:1: MD013")

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestScanAllTableFormat(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n"+fakeLinter)

	stdout, stderr, err := execute(t, "--config", configPath, "scan-all", "--format", "table", dir)
	assert.ErrorIs(t, err, ErrorLint)

	assert.Contains(t, stderr, "- Linting 2 Markdown file(s)")
	assert.Contains(t, stderr, "✖ Linting 2 Markdown file(s) (2 problem(s), ")

	assert.Contains(t, stdout, "Location")
	assert.Contains(t, stdout, "MD013 (line-length)")
	assert.Contains(t, stdout, "2 problem(s) found.")
}

func TestScanAllPasses(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n"+passingLinter)
	before := testutil.ReadTree(t, dir)

	_, _, err := execute(t, "--config", configPath, "scan-all", dir)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestScanAllLinterNotFound(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\nlinter: [ccft-no-such-linter-binary]\n")
	before := testutil.ReadTree(t, dir)

	_, _, err := execute(t, "--config", configPath, "scan-all", dir)
	assert.ErrorIs(t, err, ErrorLinterNotFound)

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestCheckListsCustomCells(t *testing.T) {
	dir, configPath := setupProject(t, "exclusion: hidden\n")
	before := testutil.ReadTree(t, dir)

	stdout, _, err := execute(t, "--config", configPath, "check", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "README.md:5:")
	assert.Contains(t, stdout, "guide.md:5:")
	assert.NotContains(t, stdout, "skip.md")
	assert.Contains(t, stdout, "4 custom-formatted cell(s) in 2 file(s) checked.")

	assert.Equal(t, before, testutil.ReadTree(t, dir))
}

func TestCheckCleanFile(t *testing.T) {
	dir, configPath := setupProject(t, "")
	path := filepath.Join(dir, "plain.md")
	require.NoError(t, os.WriteFile(path, []byte("| a | b |\n|---|---|\n| 1 | 2 |\n"), 0o644))

	stdout, _, err := execute(t, "--config", configPath, "check", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No custom-formatted table cells found.")
}
