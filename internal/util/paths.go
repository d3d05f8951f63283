package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves the per-user data directory for the app, honoring
// XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported reports are written.
func ReportsDir(app string) string {
	return filepath.Join(DataDir(app), "reports")
}
