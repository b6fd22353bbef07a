package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the boostcfg home directory.
const HomeEnv = "BOOSTCFG_HOME"

// Home returns the boostcfg home directory.
// Priority order:
//  1. BOOSTCFG_HOME environment variable (if set)
//  2. The nearest ancestor of the working directory holding a .boostcfg directory
//  3. .boostcfg under the working directory (fallback)
func Home() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return HomeFrom(cwd)
}

// HomeFrom resolves the home directory starting the upward search at start.
// The directory is created if it doesn't exist.
func HomeFrom(start string) (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	home := filepath.Join(start, ".boostcfg")
	if found, ok := findHome(start); ok {
		home = found
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create boostcfg home directory: %w", err)
	}
	return home, nil
}

func findHome(start string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, ".boostcfg")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// HistoryDBPath resolves a configured history path against the home directory.
// Absolute paths are returned unchanged; relative ones are joined to the
// parent of home so ".boostcfg/history.db" lands inside home.
func HistoryDBPath(home, configured string) string {
	if filepath.IsAbs(configured) {
		return configured
	}
	return filepath.Join(filepath.Dir(home), configured)
}
