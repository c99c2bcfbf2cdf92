package config

import (
	"os"

	"gopkg.in/ini.v1"
)

// Cfg holds the optional runtime configuration. Every field has a default so
// the store runs without any config file at all.
type Cfg struct {
	Raw *ini.File

	LogLevel string
	LogFile  string

	// RowCacheEntries bounds the executor's point-read row cache.
	RowCacheEntries int64
}

const defaultConfigFile = "minidb.ini"

func defaults() *Cfg {
	return &Cfg{
		LogLevel:        "info",
		LogFile:         "",
		RowCacheEntries: 1024,
	}
}

// Load reads the ini file at path. An empty path falls back to the
// MINIDB_CONFIG environment variable, then to ./minidb.ini. A missing file is
// not an error; defaults apply.
func Load(path string) (*Cfg, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv("MINIDB_CONFIG")
	}
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	raw, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Raw = raw

	logSec := raw.Section("log")
	cfg.LogLevel = logSec.Key("level").MustString(cfg.LogLevel)
	cfg.LogFile = logSec.Key("file").MustString(cfg.LogFile)

	cacheSec := raw.Section("cache")
	cfg.RowCacheEntries = cacheSec.Key("row_cache_entries").MustInt64(cfg.RowCacheEntries)
	if cfg.RowCacheEntries <= 0 {
		cfg.RowCacheEntries = defaults().RowCacheEntries
	}

	return cfg, nil
}
