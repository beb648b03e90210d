// Package config resolves gostrap's user configuration.
//
// Settings come from an optional config.yaml in Dir(), overridden by
// GOSTRAP_* environment variables; command-line flags override both.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gostrap configuration directory.
//
// Resolution:
//   - $GOSTRAP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gostrap if set (respects XDG on any platform)
//   - %AppData%/gostrap on Windows
//   - ~/.config/gostrap on macOS and Linux
func Dir() string {
	if dir := os.Getenv("GOSTRAP_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gostrap")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gostrap")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gostrap")
}

// FilePath returns the config file location, or "" when Dir is unknown.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
