package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bral/lsnote/internal/fsinfo"
	"github.com/bral/lsnote/internal/types"
)

const (
	connectorMid  = "├── "
	connectorLast = "└── "
	indentMid     = "│   "
	indentLast    = "    "
)

// BuildTree walks root depth-first and returns one line per entry, headed by
// the root's own name. Git status is resolved once for root and once more for
// every repository found below it, whose subtree then uses its own map.
// Symlinked directories are shown but not descended into.
func (r *Renderer) BuildTree(ctx context.Context, root string, opts Options) ([]Line, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadDir, root)
	}

	statuses := r.statuses(ctx, root, opts)

	header := Line{}
	if opts.ShowIcons {
		header = append(header, Span{Text: r.icons.Directory() + " "})
	}
	header = append(header, Span{Text: treeName(root), Color: r.cfg.Colors.Directory, Bold: true})

	lines := []Line{header}
	lines = r.walk(ctx, root, "", statuses, opts, lines)
	r.log.Debug().Str("root", root).Int("lines", len(lines)).Msg("built tree")
	return lines, nil
}

// Tree renders root as a tree in one mode. Callers needing both modes should
// use BuildTree once and Paint twice.
func (r *Renderer) Tree(ctx context.Context, root string, opts Options, plain bool) (string, error) {
	lines, err := r.BuildTree(ctx, root, opts)
	if err != nil {
		return "", err
	}
	return Paint(lines, plain), nil
}

type treeEntry struct {
	path string
	meta fsinfo.Metadata
}

func (r *Renderer) walk(
	ctx context.Context, dir, prefix string, statuses types.StatusMap, opts Options, lines []Line,
) []Line {
	var entries []treeEntry
	for _, path := range fsinfo.List(dir, opts.ShowAll) {
		meta, err := fsinfo.Stat(path)
		if err != nil {
			r.log.Debug().Err(err).Str("path", path).Msg("skipping entry")
			continue
		}
		entries = append(entries, treeEntry{path: path, meta: meta})
	}

	for i, entry := range entries {
		last := i == len(entries)-1
		connector, indent := connectorMid, indentMid
		if last {
			connector, indent = connectorLast, indentLast
		}

		line := Line{{Text: prefix + connector}}
		line = append(line, r.decorations(entry.path, entry.meta, statuses, opts)...)
		line = append(line, r.noteSpans(entry.path)...)
		lines = append(lines, line)

		if entry.meta.IsDir() {
			nested := statuses
			if opts.ShowGit && fsinfo.IsRepoRoot(entry.path) {
				nested = r.statuses(ctx, entry.path, opts)
			}
			lines = r.walk(ctx, entry.path, prefix+indent, nested, opts, lines)
		}
	}
	return lines
}

// treeName is the root's final path component, or "." when it has none.
func treeName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == ".." || base == string(filepath.Separator) {
		return "."
	}
	return base
}
