package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// cfgFileName is the expected file name of the config file.
const cfgFileName = "config.json5"

// appName is the namespace directory used under the OS config root.
const appName = "diffsitter"

// PathResolver computes the OS-convention default config file location.
// Implementations must be deterministic for a given environment and must not
// create files or directories.
type PathResolver interface {
	// DefaultConfigPath returns the canonical config file path, or an error
	// wrapping [ErrNoDefaultPath] when the OS convention cannot resolve a
	// base directory.
	DefaultConfigPath() (string, error)
}

// NewPathResolver selects the resolver strategy for the current platform.
// appName is the directory namespace, fileName the fixed config file name.
func NewPathResolver(appName, fileName string) PathResolver {
	if runtime.GOOS == "windows" {
		return &osConfigDirResolver{appName: appName, fileName: fileName}
	}
	return &xdgPathResolver{appName: appName, fileName: fileName}
}

// xdgPathResolver resolves $XDG_CONFIG_HOME/<app>/<file>, falling back to
// $HOME/.config when XDG_CONFIG_HOME is unset. Used on all Unix-like systems.
type xdgPathResolver struct {
	appName  string
	fileName string
}

func (r *xdgPathResolver) DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoDefaultPath, err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, r.appName, r.fileName), nil
}

// osConfigDirResolver resolves the per-user application data directory via
// os.UserConfigDir (%AppData% on Windows) plus <app>/<file>.
type osConfigDirResolver struct {
	appName  string
	fileName string
}

func (r *osConfigDirResolver) DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoDefaultPath, err)
	}

	return filepath.Join(configDir, r.appName, r.fileName), nil
}
