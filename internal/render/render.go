// Package render builds flat and tree listings decorated with git status,
// icons and notes, and paints them styled for a terminal or as plain text.
package render

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bral/lsnote/internal/config"
	"github.com/bral/lsnote/internal/fsinfo"
	"github.com/bral/lsnote/internal/icons"
	"github.com/bral/lsnote/internal/types"
)

// ErrReadDir is returned when the requested path cannot be listed.
var ErrReadDir = errors.New("error reading directory")

// Options selects what a listing shows.
type Options struct {
	ShowAll       bool // include dot-files
	Long          bool // long format (flat listings only)
	HumanReadable bool // sizes as 1.5K, 3.0M
	ShowIcons     bool
	ShowGit       bool
}

// StatusSource resolves the git status map for a directory.
type StatusSource interface {
	Resolve(ctx context.Context, dir string) types.StatusMap
}

// NoteSource looks up the note attached to a path.
type NoteSource interface {
	Get(path string) (string, bool)
}

// Renderer composes listing lines. It holds no per-listing state besides
// the owner/group name cache.
type Renderer struct {
	cfg    *config.Config
	icons  *icons.Lookup
	status StatusSource
	notes  NoteSource
	names  *fsinfo.NameCache
	log    zerolog.Logger
}

// New returns a Renderer. cfg must not be modified while the renderer is in use.
func New(cfg *config.Config, status StatusSource, notes NoteSource, log zerolog.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg,
		icons:  icons.New(cfg.Icons),
		status: status,
		notes:  notes,
		names:  fsinfo.NewNameCache(),
		log:    log.With().Str("component", "render").Logger(),
	}
}

func (r *Renderer) statuses(ctx context.Context, dir string, opts Options) types.StatusMap {
	if !opts.ShowGit || r.status == nil {
		return types.StatusMap{}
	}
	return r.status.Resolve(ctx, dir)
}

// decorations returns the status glyph, icon, name and note spans shared by
// every line format.
func (r *Renderer) decorations(path string, meta fsinfo.Metadata, statuses types.StatusMap, opts Options) Line {
	var line Line

	var status types.StatusKind
	var hasStatus bool
	if opts.ShowGit {
		status, hasStatus = statuses.Lookup(fsinfo.StatusKey(path))
		line = append(line, r.statusGlyph(status, hasStatus), Span{Text: " "})
	}

	name := meta.Name()
	if opts.ShowIcons {
		line = append(line, Span{Text: r.icons.For(name, meta) + " "})
	}

	line = append(line, r.nameSpan(name, meta, status, hasStatus))
	return line
}

func (r *Renderer) noteSpans(path string) Line {
	if r.notes == nil {
		return nil
	}
	note, ok := r.notes.Get(path)
	if !ok {
		return nil
	}
	return Line{{Text: "  "}, {Text: "# " + note, Color: "bright_black"}}
}

func (r *Renderer) statusGlyph(status types.StatusKind, ok bool) Span {
	if !ok {
		return Span{Text: " "}
	}
	git, colors := r.cfg.Git, r.cfg.Colors
	switch status {
	case types.StatusModified:
		return Span{Text: git.Modified, Color: colors.GitModified}
	case types.StatusStaged:
		return Span{Text: git.Staged, Color: colors.GitStaged}
	case types.StatusUntracked:
		return Span{Text: git.Untracked, Color: colors.GitUntracked}
	case types.StatusIgnored:
		return Span{Text: git.Ignored, Color: "bright_black"}
	default:
		return Span{Text: " "}
	}
}

// nameSpan colors a name by git status when it has a notable one, and by
// file type otherwise. Directories are always bold.
func (r *Renderer) nameSpan(name string, meta fsinfo.Metadata, status types.StatusKind, ok bool) Span {
	colors := r.cfg.Colors
	if ok {
		switch status {
		case types.StatusModified:
			return Span{Text: name, Color: colors.GitModified, Bold: meta.IsDir()}
		case types.StatusStaged:
			return Span{Text: name, Color: colors.GitStaged, Bold: meta.IsDir()}
		case types.StatusUntracked:
			return Span{Text: name, Color: colors.GitUntracked, Bold: meta.IsDir()}
		}
	}

	switch {
	case meta.IsDir():
		return Span{Text: name, Color: colors.Directory, Bold: true}
	case meta.IsSymlink():
		return Span{Text: name, Color: colors.Symlink}
	case meta.IsExecutable():
		return Span{Text: name, Color: colors.Executable, Bold: true}
	default:
		return Span{Text: name, Color: colors.File}
	}
}
