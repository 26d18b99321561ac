package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bral/lsnote/internal/types"
)

const (
	// Shortest meaningful porcelain line: "XY p".
	minStatusLineLen = 4
	// Byte offset of the path within a porcelain line.
	statusPathOffset = 3
)

// ErrNonUTF8Output is returned when git prints something that is not valid UTF-8.
var ErrNonUTF8Output = errors.New("git output is not valid UTF-8")

// IsInsideWorkTree checks if dir is within a Git working tree.
// Any failure, including a missing git binary, counts as "not a work tree".
func IsInsideWorkTree(ctx context.Context, dir string) bool {
	output, err := RunGitCommand(ctx, "-C", dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(output) == "true"
}

// TopLevel returns the absolute path of the working tree root containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	output, err := RunGitCommand(ctx, "-C", dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to resolve toplevel for %q: %w", dir, err)
	}
	if !utf8.ValidString(output) {
		return "", ErrNonUTF8Output
	}
	root := strings.TrimSpace(output)
	if root == "" {
		return "", fmt.Errorf("git returned an empty toplevel for %q", dir)
	}
	return root, nil
}

// StatusPorcelain runs `git status --porcelain -uall` in root and parses each line.
// Paths in the result are relative to root. Lines too short to carry a path
// are skipped.
func StatusPorcelain(ctx context.Context, root string, includeIgnored bool) ([]types.StatusEntry, error) {
	args := []string{"-C", root, "status", "--porcelain", "-uall"}
	if includeIgnored {
		args = append(args, "--ignored")
	}

	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read status of %q: %w", root, err)
	}
	if !utf8.ValidString(output) {
		return nil, ErrNonUTF8Output
	}

	var entries []types.StatusEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < minStatusLineLen {
			continue
		}
		// Spaces at either end belong to the file name.
		path := line[statusPathOffset:]
		if strings.TrimSpace(path) == "" {
			continue
		}
		entries = append(entries, types.StatusEntry{
			X:    line[0],
			Y:    line[1],
			Path: unquotePath(path),
		})
	}
	return entries, nil
}

// unquotePath undoes git's C-style quoting of unusual path names.
func unquotePath(p string) string {
	if len(p) < 2 || p[0] != '"' || p[len(p)-1] != '"' {
		return p
	}
	if unquoted, err := strconv.Unquote(p); err == nil {
		return unquoted
	}
	return p
}
