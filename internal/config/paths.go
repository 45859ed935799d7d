package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns <user config dir>/leetnorm/config.yaml.
//
// Note: this function does not create directories or files.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "leetnorm", "config.yaml"), nil
}
