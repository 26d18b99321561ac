package gitstatus

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bral/lsnote/internal/fsinfo"
	"github.com/bral/lsnote/internal/gitcmd"
	"github.com/bral/lsnote/internal/types"
)

// Resolver builds a StatusMap for a directory from the git status report.
type Resolver struct {
	includeIgnored bool
	log            zerolog.Logger
}

// NewResolver creates a Resolver. When includeIgnored is set, ignored paths
// are requested from git as well.
func NewResolver(includeIgnored bool, log zerolog.Logger) *Resolver {
	return &Resolver{
		includeIgnored: includeIgnored,
		log:            log.With().Str("component", "gitstatus").Logger(),
	}
}

// Resolve returns the status of every reported path in the working tree that
// contains dir, plus every ancestor directory up to the tree root.
// Outside a working tree, or when git fails, the map is empty.
func (r *Resolver) Resolve(ctx context.Context, dir string) types.StatusMap {
	absDir := fsinfo.Canonical(dir)

	if !gitcmd.IsInsideWorkTree(ctx, absDir) {
		r.log.Debug().Str("dir", absDir).Msg("not inside a git work tree")
		return types.StatusMap{}
	}

	root, err := gitcmd.TopLevel(ctx, absDir)
	if err != nil {
		r.log.Debug().Err(err).Str("dir", absDir).Msg("falling back to directory as git root")
		root = absDir
	}
	root = filepath.Clean(filepath.FromSlash(root))

	entries, err := gitcmd.StatusPorcelain(ctx, root, r.includeIgnored)
	if err != nil {
		r.log.Debug().Err(err).Str("root", root).Msg("git status unavailable")
		return types.StatusMap{}
	}

	statuses := Propagate(root, entries)
	r.log.Debug().
		Str("root", root).
		Int("entries", len(entries)).
		Int("paths", len(statuses)).
		Msg("resolved git status")
	return statuses
}

// Propagate classifies entries (paths relative to root) and folds each kind
// into every ancestor directory up to and including root. An ancestor is only
// overwritten by a strictly higher priority, so among equal priorities the
// first kind recorded stays.
func Propagate(root string, entries []types.StatusEntry) types.StatusMap {
	statuses := make(types.StatusMap)

	for _, entry := range entries {
		kind := Classify(entry.X, entry.Y)
		path := filepath.Join(root, filepath.FromSlash(entry.Path))
		statuses[path] = kind

		for parent := filepath.Dir(path); within(root, parent); parent = filepath.Dir(parent) {
			current, ok := statuses[parent]
			if !ok || kind.Priority() > current.Priority() {
				statuses[parent] = kind
			}
			if parent == root {
				break
			}
		}
	}

	return statuses
}

// within reports whether p is root or lies below it.
func within(root, p string) bool {
	if p == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return strings.HasPrefix(p, prefix)
}
