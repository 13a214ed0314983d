package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading ~ with home.
func ExpandHome(p, home string) string {
	if home == "" {
		return p
	}
	switch {
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, `~\`):
		return filepath.Join(home, p[2:])
	}
	return p
}

// Resolve expands ~ against the current user's home directory and normalizes
// the result. Paths that cannot be expanded are only normalized.
func Resolve(p string) string {
	if p == "" {
		return ""
	}
	home, _ := os.UserHomeDir()
	return NormalizePath(ExpandHome(p, home))
}
