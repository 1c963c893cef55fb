package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

func TestConvertCmd_Use(t *testing.T) {
	assert.Equal(t, "convert [file...]", convertCmd.Use)
}

func TestConvertCmd_SkipsBadFiles(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	stdout, stderr, err := execute(t, "convert", "a.trs", "bad.trs", "two.trs", "b.trs")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.trs", "b.trs"}, svc.converted)
	assert.Contains(t, stdout, "a.trs -> a.TextGrid")
	assert.Contains(t, stdout, "b.trs -> b.TextGrid")
	assert.Contains(t, stderr, "skipping bad.trs")
	assert.Contains(t, stderr, "skipping two.trs")
}

func TestConvertCmd_AbortsOnWriteError(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "convert", "a.trs", "readonly.trs", "b.trs")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrite)
	assert.Contains(t, err.Error(), "readonly.trs")
	assert.Equal(t, []string{"a.trs"}, svc.converted)
}

func TestConvertCmd_NoArgsShowsHelp(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "convert")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
}

func TestConvertCmd_EndToEnd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	// Let the command wire the real reader and renderer.
	transcriptService = nil
	transcriptReader = nil
	settingsService = nil

	dir := t.TempDir()
	outDir := filepath.Join(dir, "grids")
	in := filepath.Join(dir, "talk.trs")
	content := "<Trans><Episode><Section type=\"report\" startTime=\"0\" endTime=\"4\">" +
		"<Turn startTime=\"0\" endTime=\"4\"><Sync time=\"0\"/>päivää<Sync time=\"1.5\"/>moi</Turn>" +
		"</Section></Episode></Trans>"
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	_, stderr, err := execute(t, "convert",
		"--config", filepath.Join(dir, "config"),
		"--encoding", "UTF-8",
		"--output-dir", outDir,
		in)

	require.NoError(t, err, stderr)
	data, err := os.ReadFile(filepath.Join(outDir, "talk.TextGrid"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "            xmin = 0.0\n            xmax = 1.5\n            text = \"päivää\"\n")
	assert.Contains(t, string(data), "            xmin = 1.5\n            xmax = 4.0\n            text = \"moi\"\n")
}

func TestConvertCmd_UnknownEncoding(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	transcriptService = nil
	transcriptReader = nil

	_, _, err := execute(t, "convert", "--encoding", "no-such-charset", "a.trs")

	assert.ErrorIs(t, err, domain.ErrUnsupportedEncoding)
}
