// Package config loads tool settings from AGMD_* environment variables,
// falling back to defaults for any unset values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all agmd settings.
type Config struct {
	// CachePath is the scan cache database location.
	CachePath string
	// IgnoreName is the tool-specific exclusion file consulted next to
	// .gitignore at the scan root.
	IgnoreName string
	// NoColor disables styled output regardless of terminal detection.
	NoColor bool
}

// Load reads configuration from the environment.
// Recognized variables: AGMD_CACHE_PATH, AGMD_IGNORE_NAME, AGMD_NO_COLOR.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("agmd")
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	v.SetDefault("cache_path", filepath.Join(home, ".agmd", "cache.db"))
	v.SetDefault("ignore_name", ".agmdignore")
	v.SetDefault("no_color", false)

	return Config{
		CachePath:  v.GetString("cache_path"),
		IgnoreName: v.GetString("ignore_name"),
		NoColor:    v.GetBool("no_color"),
	}, nil
}
