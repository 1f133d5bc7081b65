package config

import (
	"os"
	"path/filepath"
)

// GetSetsyncHome returns SETSYNC_HOME or ~/.setsync default
func GetSetsyncHome() string {
	home := os.Getenv("SETSYNC_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".setsync"
		}
		return filepath.Join(homeDir, ".setsync")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SETSYNC_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetSetsyncHome(), "state.db")
}

// GetSettingsPath returns $SETSYNC_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetSetsyncHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
