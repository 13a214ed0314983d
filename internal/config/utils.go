package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/prodsearch/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists saves cfg unless a file is already at its path. It
// reports whether the file was written.
func EnsureConfigExists(cfg *Config) (bool, error) {
	if _, err := os.Stat(cfg.Path()); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to check config file existence: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return false, fmt.Errorf("failed to create config file: %w", err)
	}
	return true, nil
}
