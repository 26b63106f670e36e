package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "present.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(tempDir, "absent.csv")))
	assert.False(t, FileExists(tempDir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, DirectoryExists(tempDir))
	assert.False(t, DirectoryExists(filepath.Join(tempDir, "absent")))
	assert.False(t, DirectoryExists(file), "files are not directories")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestReadFile(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0600))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = ReadFile(filepath.Join(tempDir, "absent.csv"))
	assert.Error(t, err)
}

func TestRemoveQuietly(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "temp.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	RemoveQuietly(file)
	assert.False(t, FileExists(file))

	// Removing an absent file must not panic.
	RemoveQuietly(file)
}
