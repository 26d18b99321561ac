package icons

import (
	"io/fs"
	"testing"
	"time"

	"github.com/bral/lsnote/internal/config"
	"github.com/bral/lsnote/internal/fsinfo"
)

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func meta(name string, mode fs.FileMode) fsinfo.Metadata {
	return fsinfo.Metadata{Info: fakeInfo{name: name, mode: mode}}
}

func TestFor(t *testing.T) {
	cfg := config.DefaultConfig().Icons
	cfg.Executable = "🚀"
	lookup := New(cfg)

	testCases := []struct {
		name string
		mode fs.FileMode
		want string
	}{
		{"src", fs.ModeDir | 0o755, "📁"},
		{"main.rs", fs.ModeDir | 0o755, "📁"}, // directory beats extension
		{"link.go", fs.ModeSymlink | 0o777, "🔗"},
		{"Dockerfile", 0o644, "🐳"},
		{"README.md", 0o644, "📖"}, // filename beats extension
		{"notes.MD", 0o644, "📝"},
		{"archive.tar.gz", 0o644, "📦"},
		{"build.sh", 0o755, "💻"}, // extension beats executable bit
		{"run", 0o755, "🚀"},
		{"data.unknown", 0o644, "📄"},
		{"noext", 0o600, "📄"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lookup.For(tc.name, meta(tc.name, tc.mode)); got != tc.want {
				t.Errorf("For(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestForNerdStyle(t *testing.T) {
	cfg := config.DefaultConfig().Icons
	cfg.Style = config.IconStyleNerd
	lookup := New(cfg)

	if got := lookup.For("main.go", meta("main.go", 0o644)); got == "" || got == "🐹" {
		t.Errorf("Expected a Nerd Font glyph for main.go, got %q", got)
	}
	// Symlinks keep the configured glyph in every style.
	if got := lookup.For("link", meta("link", fs.ModeSymlink|0o777)); got != "🔗" {
		t.Errorf("For(symlink) = %q, want 🔗", got)
	}
}

func TestDirectory(t *testing.T) {
	if got := New(config.DefaultConfig().Icons).Directory(); got != "📁" {
		t.Errorf("Directory() = %q, want 📁", got)
	}
}
