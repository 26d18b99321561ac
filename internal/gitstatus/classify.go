// Package gitstatus turns the git status report into a per-path status map
// and propagates the most important status up to every parent directory.
package gitstatus

import "github.com/bral/lsnote/internal/types"

// Classify maps a porcelain XY code to a status kind. The first matching rule wins:
// untracked, ignored, working tree change, index change, clean.
// Unknown codes are Clean so a surprising report never breaks a listing.
func Classify(x, y byte) types.StatusKind {
	switch {
	case x == '?' && y == '?':
		return types.StatusUntracked
	case x == '!' && y == '!':
		return types.StatusIgnored
	case y == 'M' || y == 'D' || y == 'A':
		return types.StatusModified
	case x == 'M' || x == 'A' || x == 'D' || x == 'R' || x == 'C':
		return types.StatusStaged
	default:
		return types.StatusClean
	}
}
