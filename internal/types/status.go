// Package types holds the value types shared between the git, filesystem and rendering packages.
package types

// StatusKind classifies a path after reading the git status report.
type StatusKind string

const (
	StatusModified  StatusKind = "Modified"
	StatusStaged    StatusKind = "Staged"
	StatusUntracked StatusKind = "Untracked"
	StatusIgnored   StatusKind = "Ignored"
	StatusClean     StatusKind = "Clean"
)

// Priority orders kinds for propagation to parent directories.
// Ignored and Clean share the lowest priority.
func (k StatusKind) Priority() int {
	switch k {
	case StatusModified:
		return 3
	case StatusStaged:
		return 2
	case StatusUntracked:
		return 1
	default:
		return 0
	}
}

// StatusEntry is one parsed line of `git status --porcelain`.
type StatusEntry struct {
	X    byte   // index side
	Y    byte   // working tree side
	Path string // relative to the repository root
}

// StatusMap maps absolute paths to their resolved status.
// Directories carry the highest-priority status of their descendants.
type StatusMap map[string]StatusKind

// Lookup returns the status for path and whether one was recorded.
func (m StatusMap) Lookup(path string) (StatusKind, bool) {
	if m == nil {
		return "", false
	}
	k, ok := m[path]
	return k, ok
}
