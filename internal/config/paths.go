// Package config manages slap configuration and its location on disk.
//
// Configuration is a small TOML file at $XDG_CONFIG_HOME/slap/config.toml
// (falling back to ~/.config/slap/config.toml). Every key can be overridden by
// a SLAP_ prefixed environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Paths contains the filesystem paths slap reads configuration from.
type Paths struct {
	// Root is the slap configuration directory (default: ~/.config/slap)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for slap.
// Paths can be overridden with environment variables:
// - XDG_CONFIG_HOME: Override the base configuration directory
func DefaultPaths() (*Paths, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	root := filepath.Join(base, "slap")
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.toml"),
	}, nil
}
