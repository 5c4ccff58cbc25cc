package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTodoDir returns the default td data directory.
func DefaultTodoDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".todo"), nil
}

// DefaultConfigPath returns the path of the global td config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "td", "config.toml"), nil
}
