package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bral/lsnote/internal/fsinfo"
	"github.com/bral/lsnote/internal/types"
)

// BuildList lists a single directory level, or a single entry when path is a
// file. For a file the git status comes from its parent directory.
func (r *Renderer) BuildList(ctx context.Context, path string, opts Options) ([]Line, error) {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		statuses := r.statuses(ctx, filepath.Dir(path), opts)
		line, ok := r.entryLine(path, statuses, opts)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrReadDir, path)
		}
		return []Line{line}, nil
	}

	items := fsinfo.List(path, opts.ShowAll)
	if len(items) == 0 && !isDir(path) {
		return nil, fmt.Errorf("%w: %s", ErrReadDir, path)
	}

	statuses := r.statuses(ctx, path, opts)

	lines := make([]Line, 0, len(items)+1)
	if opts.Long {
		lines = append(lines, Line{{Text: "total " + strconv.FormatInt(TotalBlocks(items), 10)}})
	}
	for _, item := range items {
		if line, ok := r.entryLine(item, statuses, opts); ok {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// List renders path as a flat listing in one mode.
func (r *Renderer) List(ctx context.Context, path string, opts Options, plain bool) (string, error) {
	lines, err := r.BuildList(ctx, path, opts)
	if err != nil {
		return "", err
	}
	return Paint(lines, plain), nil
}

// TotalBlocks returns the combined size of paths in 1K blocks, following
// symlinks. Paths that cannot be read count as zero.
func TotalBlocks(paths []string) int64 {
	var total int64
	for _, p := range paths {
		if blocks, ok := fsinfo.Blocks(p); ok {
			total += blocks
		}
	}
	return total / 2
}

func (r *Renderer) entryLine(path string, statuses types.StatusMap, opts Options) (Line, bool) {
	meta, err := fsinfo.Stat(path)
	if err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("skipping entry")
		return nil, false
	}

	var line Line
	if opts.Long {
		line = append(line, Span{Text: r.longColumns(meta, opts)})
	}
	line = append(line, r.decorations(path, meta, statuses, opts)...)
	if opts.Long && meta.IsSymlink() && meta.LinkTarget != "" {
		line = append(line, Span{Text: " -> " + meta.LinkTarget})
	}
	line = append(line, r.noteSpans(path)...)
	return line, true
}

// longColumns renders permissions, link count, owner, group, size and date,
// followed by the separating space.
func (r *Renderer) longColumns(meta fsinfo.Metadata, opts Options) string {
	size := fmt.Sprintf("%8d", meta.Size())
	if opts.HumanReadable {
		size = fmt.Sprintf("%6s", fsinfo.HumanSize(meta.Size()))
	}
	return fmt.Sprintf("%s %2d %-8s %-8s %s %s ",
		fsinfo.Permissions(meta.Mode()),
		meta.Nlink,
		r.names.User(meta.UID),
		r.names.Group(meta.GID),
		size,
		fsinfo.FormatDate(meta.ModTime()),
	)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
