package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/spent/pkg"
)

// configDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var configDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				return "."
			}

			dir = filepath.Join(dir, ".config")
		}

		return filepath.Join(dir, pkg.Name)
	},
)

// cacheDir returns the cache directory path used for transient files such
// as pprof output.
//
//nolint:gochecknoglobals
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				return "."
			}

			dir = filepath.Join(dir, ".cache")
		}

		return filepath.Join(dir, pkg.Name)
	},
)

// configPath joins the configuration directory with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}
