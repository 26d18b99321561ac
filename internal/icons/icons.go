// Package icons picks the glyph shown in front of each listed name.
package icons

import (
	"path/filepath"
	"strings"

	devicons "github.com/epilande/go-devicons"

	"github.com/bral/lsnote/internal/config"
	"github.com/bral/lsnote/internal/fsinfo"
)

// Lookup resolves icons from the configured tables.
type Lookup struct {
	cfg config.IconsConfig
}

// New returns a Lookup over cfg. cfg is not copied deeply and must not be
// modified afterwards.
func New(cfg config.IconsConfig) *Lookup {
	return &Lookup{cfg: cfg}
}

// Directory returns the icon used for directories, including the tree header.
func (l *Lookup) Directory() string {
	return l.cfg.Directory
}

// For returns the icon for an entry. Precedence: directory, symlink, exact
// filename, extension, executable bit, plain file.
func (l *Lookup) For(name string, meta fsinfo.Metadata) string {
	if l.cfg.Style == config.IconStyleNerd && !meta.IsSymlink() && meta.Info != nil {
		if icon := devicons.IconForInfo(meta.Info).Icon; icon != "" {
			return icon
		}
	}

	if meta.IsDir() {
		return l.cfg.Directory
	}
	if meta.IsSymlink() {
		return l.cfg.Symlink
	}

	lower := strings.ToLower(name)
	if icon, ok := l.cfg.Filenames[lower]; ok {
		return icon
	}
	if ext := strings.TrimPrefix(filepath.Ext(lower), "."); ext != "" {
		if icon, ok := l.cfg.Extensions[ext]; ok {
			return icon
		}
	}
	if meta.IsExecutable() {
		return l.cfg.Executable
	}
	return l.cfg.File
}
