// cmd/mediatidy/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs), cobra
// PURPOSE: Exercise the command line surface end to end

package mediatidy

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv(logging.EnvLogFile, filepath.Join(t.TempDir(), "mediatidy.log"))
	t.Setenv("MEDIATIDY_EXIFTOOL__DISABLED", "true")
}

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRootRequiresOneTarget(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = execute(t, "", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestRootRejectsMissingFolder(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing"), "--yes")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootRejectsBadFormat(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", t.TempDir(), "--format", "decade", "--yes")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRootRejectsBadOutput(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", t.TempDir(), "--output", "xml", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestRootOrganizeJSON(t *testing.T) {
	setupEnv(t)
	root := t.TempDir()
	writeFile(t, root, "inbox/notes.jpg", "not really a picture")

	out, err := execute(t, "", root, "--yes", "--output", "json")
	require.NoError(t, err)

	var result types.RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, "organize", result.Command)

	var names []types.PassName
	for _, p := range result.Passes {
		names = append(names, p.Pass)
	}
	assert.Equal(t, []types.PassName{
		types.PassClassify, types.PassDedup, types.PassLivePhoto, types.PassExtFix, types.PassReap,
	}, names)

	assert.FileExists(t, filepath.Join(root, "Uncategorized", "notes.jpg"))
	assert.NoDirExists(t, filepath.Join(root, "inbox"), "emptied folder reaped")
}

func TestRootOrganizePromptsOnConsole(t *testing.T) {
	setupEnv(t)
	root := t.TempDir()
	writeFile(t, root, "a.jpg", "same bytes")
	writeFile(t, root, "b.jpg", "same bytes")

	out, err := execute(t, "y\ny\n", root, "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "CLASSIFY")
	assert.Contains(t, out, "[1/5]")

	entries, err := os.ReadDir(filepath.Join(root, "Uncategorized"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "one copy survives")
	assert.NoDirExists(t, filepath.Join(root, "Duplicates"))
}

func TestPruneRequiresExiftool(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "prune-short", t.TempDir(), "-d", "3", "--yes")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDurationUnavailable))
}

func TestPruneRejectsNegativeDuration(t *testing.T) {
	setupEnv(t)
	t.Setenv("MEDIATIDY_EXIFTOOL__DISABLED", "false")

	cmd := NewPruneCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{t.TempDir(), "-d", "-1", "--yes"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStandalonePruneRequiresDuration(t *testing.T) {
	setupEnv(t)

	cmd := NewPruneCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{t.TempDir(), "--yes"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "duration" not set`)
}

func TestConfigInit(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := execute(t, "", "config", "init", dir, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	content, err := os.ReadFile(filepath.Join(dir, "mediatidy.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "format")

	_, err = execute(t, "", "config", "init", dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
}

func TestConfigShowUsesLibraryFile(t *testing.T) {
	setupEnv(t)
	root := t.TempDir()
	writeFile(t, root, "mediatidy.toml", "format = \"year-month\"\n")

	out, err := execute(t, "", "config", "show", root)
	require.NoError(t, err)
	assert.Contains(t, out, "year-month")
}

func TestVersionCmd(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mediatidy version dev")
}

func TestGuideCmd(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "mediatidy")
}

func TestHelpTopics(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "duplicates")
	assert.Contains(t, out, "--yes")
}
