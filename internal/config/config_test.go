package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".agmdignore", cfg.IgnoreName)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, "cache.db", filepath.Base(cfg.CachePath))
	assert.Contains(t, cfg.CachePath, ".agmd")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AGMD_CACHE_PATH", "/tmp/agmd-test/alt.db")
	t.Setenv("AGMD_IGNORE_NAME", ".todoignore")
	t.Setenv("AGMD_NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/agmd-test/alt.db", cfg.CachePath)
	assert.Equal(t, ".todoignore", cfg.IgnoreName)
	assert.True(t, cfg.NoColor)
}
