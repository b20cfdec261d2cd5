package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	meta := "files:\n  - base.yaml\n  - development.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(meta), 0644))

	base := "service:\n  name: hedit-daemon\nlogging:\n  level: info\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0644))

	// development.yaml intentionally absent; missing listed files are skipped.
	return dir
}

func TestNewConfig(t *testing.T) {
	dir := writeConfigDir(t)
	t.Setenv("HEDIT_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	require.NotNil(t, provider)

	name := provider.Get("service.name")
	assert.True(t, name.HasValue())
	assert.Equal(t, "hedit-daemon", name.String())

	level := provider.Get("logging.level")
	assert.True(t, level.HasValue())
	assert.Equal(t, "info", level.String())

	assert.False(t, provider.Get("nonexistent.path").HasValue())
	assert.Equal(t, "config", provider.Name())
}

func TestNewConfigMissingDir(t *testing.T) {
	t.Setenv("HEDIT_CONFIG_DIR", "/nonexistent/path")

	provider, err := NewConfig()
	assert.Error(t, err)
	assert.Nil(t, provider)
}
