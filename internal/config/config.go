package config

import (
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment overrides (SLAP_TMPDIR, ...).
	EnvPrefix = "SLAP"

	keyTmpDir = "tmpdir"
)

// Config is the resolved slap configuration.
type Config struct {
	// TmpDir names a subdirectory of the system temp directory to create temp
	// entries in. Empty means the system temp directory itself.
	TmpDir string
}

// Load reads the config file at the default location and applies environment
// overrides. It never fails: a missing home directory, a missing file, or a
// file that does not parse all mean "no configuration".
func Load() *Config {
	paths, err := DefaultPaths()
	if err != nil {
		return LoadFile("")
	}
	return LoadFile(paths.Config)
}

// LoadFile is Load with an explicit config file path. An empty path skips the
// file and only applies the environment.
func LoadFile(path string) *Config {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	_ = v.BindEnv(keyTmpDir)

	if path != "" {
		v.SetConfigFile(path)
		// Absent or malformed config falls back to defaults.
		_ = v.ReadInConfig()
	}

	return &Config{
		TmpDir: v.GetString(keyTmpDir),
	}
}
