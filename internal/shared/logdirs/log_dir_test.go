package logdirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLogFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "log2.txt")
	writeFile(t, dir, "log1.txt")

	archiveDir := filepath.Join(dir, "archive")
	require.NoError(t, os.Mkdir(archiveDir, 0755))
	writeFile(t, archiveDir, "nested.txt")

	files, err := ListLogFiles(dir)
	require.NoError(t, err)

	// Full paths, sorted by name; the subdirectory and its contents are
	// not included
	assert.Equal(t, []string{
		filepath.Join(dir, "log1.txt"),
		filepath.Join(dir, "log2.txt"),
	}, files)
}

func TestListLogFiles_EmptyDir(t *testing.T) {
	t.Parallel()

	files, err := ListLogFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListLogFiles_MissingDir(t *testing.T) {
	t.Parallel()

	files, err := ListLogFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, files)
}

func TestListLogFiles_SkipsInvalidUTF8Names(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "good.log")

	if err := os.WriteFile(filepath.Join(dir, "bad\xff.log"), []byte("x"), 0644); err != nil {
		t.Skip("filesystem rejects non-UTF-8 names")
	}

	files, err := ListLogFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "good.log")}, files)
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}
