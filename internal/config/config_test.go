package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, s.ExcludePartnerIDs)
	assert.Equal(t, ".", s.OutputDir)
	assert.Equal(t, "", s.UsageTable)
	assert.Equal(t, "warn", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
}

func TestLoad_BaseAndEnvironmentFiles(t *testing.T) {
	t.Setenv(EnvironmentVariable, "Development")

	dir := t.TempDir()
	writeFile(t, dir, "appsettings.json", `{
		"ExcludePartnerIds": [26392, 42],
		"OutputDir": "out",
		"Logging": {"Level": "info"}
	}`)
	writeFile(t, dir, "appsettings.Development.json", `{
		"Logging": {"Level": "debug"}
	}`)
	writeFile(t, dir, "appsettings.Staging.json", `{"OutputDir": "never"}`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{26392, 42}, s.ExcludePartnerIDs)
	assert.Equal(t, "out", s.OutputDir)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
}

func TestLoad_EnvironmentVariablesOverrideFiles(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	t.Setenv("USAGETRANSLATOR_EXCLUDEPARTNERIDS", "7,8,9")
	t.Setenv("USAGETRANSLATOR_LOGGING_FORMAT", "json")

	dir := t.TempDir()
	writeFile(t, dir, "appsettings.json", `{"ExcludePartnerIds": [1], "Logging": {"Format": "console"}}`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 8, 9}, s.ExcludePartnerIDs)
	assert.Equal(t, "json", s.Logging.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	t.Cleanup(func() { os.Unsetenv("USAGETRANSLATOR_OUTPUTDIR") })

	dir := t.TempDir()
	writeFile(t, dir, ".env", "USAGETRANSLATOR_OUTPUTDIR=from-dotenv\n")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", s.OutputDir)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	dir := t.TempDir()
	writeFile(t, dir, "appsettings.json", `{not json`)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	dir := t.TempDir()
	writeFile(t, dir, "appsettings.json", `{"OutputDir": " ", "Logging": {"Level": "loud", "Format": "xml"}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OutputDir cannot be empty")
	assert.Contains(t, err.Error(), "Logging.Format")
	assert.Contains(t, err.Error(), "Logging.Level")
}

func TestEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	assert.Equal(t, DefaultEnvironment, Environment())

	t.Setenv(EnvironmentVariable, "Staging")
	assert.Equal(t, "Staging", Environment())
}

func TestLoadUsageTable(t *testing.T) {
	table, err := LoadUsageTable("")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	dir := t.TempDir()
	path := writeFile(t, dir, "usage.yaml", "divisors:\n  abc123: 10\n  XYZ: 3\n")

	table, err = LoadUsageTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	d, ok := table.Divisor("ABC123")
	assert.True(t, ok)
	assert.Equal(t, 10, d)

	_, ok = table.Divisor("EA000001GB0O")
	assert.False(t, ok, "file replaces the built-in table")
}

func TestLoadUsageTable_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadUsageTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "divisors:\n  ABC: 0\n")
	_, err = LoadUsageTable(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divisor for ABC must be positive")

	garbage := writeFile(t, dir, "garbage.yaml", "divisors: [1, 2\n")
	_, err = LoadUsageTable(garbage)
	assert.Error(t, err)
}
