// Package paths resolves the configuration directory and the layout file the
// framer CLI operates on.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default names inside the configuration directory.
const (
	AppDirName        = "frames"
	ConfigFileName    = "config.yaml"
	DefaultLayoutName = "layout.yaml"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "FRAMES_CONFIG_DIR"
	EnvLayout    = "FRAMES_LAYOUT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/frames (fallback ~/.config/frames)
// macOS:   ~/Library/Application Support/frames
// Windows: %APPDATA%/frames
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > FRAMES_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveLayout returns the layout file to load following the precedence
// chain: arg > FRAMES_LAYOUT env > configured > configDir/layout.yaml.
//
// A relative configured value is taken relative to configDir, so a
// config.yaml can name a layout sitting next to it.
func ResolveLayout(arg, configured, configDir string) (string, error) {
	if arg != "" {
		return filepath.Abs(arg)
	}
	if env := os.Getenv(EnvLayout); env != "" {
		return filepath.Abs(env)
	}
	if configured != "" {
		if filepath.IsAbs(configured) {
			return configured, nil
		}
		return filepath.Abs(filepath.Join(configDir, configured))
	}
	return filepath.Abs(filepath.Join(configDir, DefaultLayoutName))
}
