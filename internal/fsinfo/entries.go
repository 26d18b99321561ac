// Package fsinfo lists directories and collects the file metadata shown in listings.
package fsinfo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the immediate children of dir as full paths, ordered by
// case-insensitive name. Dot-files are dropped unless includeHidden is set.
// An unreadable directory yields an empty slice.
func List(dir string, includeHidden bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		items = append(items, filepath.Join(dir, name))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(filepath.Base(items[i])) < strings.ToLower(filepath.Base(items[j]))
	})
	return items
}

// Canonical returns the absolute, symlink-free form of path, or the best
// approximation available when the path cannot be resolved.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// StatusKey returns the key under which git status for path is stored:
// the canonical parent directory joined with the entry's own name, so a
// symlink is looked up as itself rather than as its target.
func StatusKey(path string) string {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return Canonical(clean)
	}
	return filepath.Join(Canonical(filepath.Dir(clean)), base)
}

// IsRepoRoot reports whether dir has its own .git entry, either a directory
// or the file left by worktrees and submodules.
func IsRepoRoot(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, ".git"))
	return err == nil
}
