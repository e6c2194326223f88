// Package config resolves vocabmd's configuration directory and loads
// settings from config files, the environment and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the vocabmd configuration directory.
//
// Resolution:
//   - $VOCABMD_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/vocabmd if set (respects XDG on any platform)
//   - %AppData%/vocabmd on Windows
//   - ~/.config/vocabmd on macOS and Linux
func Dir() string {
	if dir := os.Getenv("VOCABMD_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vocabmd")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "vocabmd")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vocabmd")
}

// Files returns the config files Load reads, lowest precedence first: the
// user file in Dir() and the project file in the working directory.
func Files() []string {
	files := []string{ProjectFile}
	if dir := Dir(); dir != "" {
		files = append([]string{filepath.Join(dir, UserFile)}, files...)
	}
	return files
}
