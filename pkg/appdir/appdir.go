// Package appdir resolves the per-user data directory used for the
// default history database and config file lookup.
package appdir

import (
	"os"
	"path"
)

var appDirCache string

// AppDir returns ~/.pixveil, creating it on first use. If the home
// directory cannot be resolved it falls back to the system temp dir.
func AppDir() string {
	if appDirCache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		appDirCache = path.Join(home, ".pixveil")
		os.MkdirAll(appDirCache, 0o755)
	}
	return appDirCache
}
