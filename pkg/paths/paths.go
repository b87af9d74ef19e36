// Package paths resolves the per-user locations movex reads and writes,
// following the XDG base directory layout, and expands ~ in user input.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppDirName is the directory used under the XDG base directories
const AppDirName = "movex"

// ConfigDir returns $XDG_CONFIG_HOME/movex. The environment is read at
// call time so that tests and wrappers can redirect it.
func ConfigDir() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", xdg.ConfigHome), AppDirName)
}

// StateDir returns $XDG_STATE_HOME/movex
func StateDir() string {
	return filepath.Join(baseDir("XDG_STATE_HOME", xdg.StateHome), AppDirName)
}

// LogFile returns the append-only log file location
func LogFile() string {
	return filepath.Join(StateDir(), AppDirName+".log")
}

func baseDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return ExpandHome(dir)
	}
	return fallback
}

// HomeDir returns the home directory, preferring os.UserHomeDir over $HOME.
// It returns "" when neither is available.
func HomeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return os.Getenv("HOME")
}

// ExpandHome replaces a leading ~ or ~/ with the home directory. Paths
// for other users (~bob/...) and paths without ~ are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := HomeDir()
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
