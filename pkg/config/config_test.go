package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceKindIsValid(t *testing.T) {
	assert.True(t, SourceModule.IsValid())
	assert.True(t, SourceScript.IsValid())
	assert.False(t, SourceKind("commonjs").IsValid())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SourceModule, cfg.SourceKind)
	assert.False(t, cfg.KeepEmptyDeclareWarning)
	assert.Equal(t, ".js", cfg.OutputSuffix)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsstrip.toml")
	writeFile(t, path, `
source_kind = "script"
warn_on_declare_strip = true
output_suffix = ".mjs"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceScript, cfg.SourceKind)
	assert.True(t, cfg.KeepEmptyDeclareWarning)
	assert.Equal(t, ".mjs", cfg.OutputSuffix)
}

func TestLoadRejectsInvalidSourceKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsstrip.toml")
	writeFile(t, path, `source_kind = "commonjs"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyOutputSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsstrip.toml")
	writeFile(t, path, `output_suffix = ""`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceKind = "bogus"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.OutputSuffix = ""
	assert.Error(t, cfg.Validate())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
