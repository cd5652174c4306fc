package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigName is the config file name without extension
	ConfigName = "planpilot"
	// DBFileName is the store file inside the home directory
	DBFileName = "planpilot.db"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PLANPILOT"
)

// GetHome returns PLANPILOT_HOME or ~/.planpilot default
func GetHome() string {
	home := os.Getenv(EnvPrefix + "_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".planpilot"
		}
		return filepath.Join(homeDir, ".planpilot")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PLANPILOT_HOME/planpilot.db
func GetDBPath() string {
	return filepath.Join(GetHome(), DBFileName)
}

// configSearchPaths lists where planpilot.yaml is looked up, in priority order
func configSearchPaths() []string {
	var dirs []string
	if home := os.Getenv(EnvPrefix + "_HOME"); home != "" {
		dirs = append(dirs, ExpandPath(home))
	}
	dirs = append(dirs, filepath.Join(".", ".planpilot"))
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "planpilot"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, ".planpilot"))
	}
	return dirs
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
