package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, int64(1024), cfg.RowCacheEntries)
}

func TestLoadReadsSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minidb.ini")
	content := `[log]
level = debug
file  = /tmp/minidb.log

[cache]
row_cache_entries = 256
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/minidb.log", cfg.LogFile)
	assert.Equal(t, int64(256), cfg.RowCacheEntries)
}

func TestLoadRejectsNonPositiveCacheSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minidb.ini")
	require.NoError(t, os.WriteFile(path, []byte("[cache]\nrow_cache_entries = 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.RowCacheEntries)
}
