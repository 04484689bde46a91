package paths

import (
	"os"
	"path/filepath"
)

func configRoot() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".config")
}

// ConfigDir returns $XDG_CONFIG_HOME/tabpick (or the platform equivalent).
func ConfigDir() string {
	return filepath.Join(configRoot(), "tabpick")
}

// ConfigFile returns the default config.yaml location.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DebugLog returns the file debug logging is written to.
func DebugLog() string {
	return filepath.Join(os.TempDir(), "tabpick-debug.log")
}
