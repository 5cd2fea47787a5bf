package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	fm := NewFileManager(dir)

	paths, err := fm.WriteAll([]OutputFile{
		{Name: "a.sql", Data: []byte("first")},
		{Name: "b.txt", Data: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.sql"), filepath.Join(dir, "b.txt")}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	data, err = os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Empty(t, data)

	// Overwrite and make sure no temporary files are left behind.
	_, err = fm.WriteAll([]OutputFile{{Name: "a.sql", Data: []byte("second")}})
	require.NoError(t, err)

	data, err = os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteAll_FailureLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(dir)

	// The second file cannot be staged; the first must not survive.
	_, err := fm.WriteAll([]OutputFile{
		{Name: "ok.txt", Data: []byte("x")},
		{Name: filepath.Join("missing", "bad.txt"), Data: []byte("y")},
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewFileManager_DefaultDir(t *testing.T) {
	assert.Equal(t, ".", NewFileManager("").OutputDir)
	assert.Equal(t, filepath.Join(".", "x"), NewFileManager("").Path("x"))
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, RequireFile(file))
	assert.True(t, FileExists(file))

	err := RequireFile(filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, FileExists(filepath.Join(dir, "nope.csv")))

	assert.Error(t, RequireFile(dir))
	assert.False(t, FileExists(dir))
}
