package fsinfo

import (
	"io/fs"
	"os"
	"time"
)

// Metadata is the symlink-aware (lstat) view of a directory entry.
type Metadata struct {
	Info       fs.FileInfo
	Nlink      uint64
	UID        uint32
	GID        uint32
	Blocks     int64 // 512-byte blocks
	LinkTarget string
}

// Name returns the entry's base name.
func (m Metadata) Name() string { return m.Info.Name() }

// Mode returns the entry's mode bits, including the type.
func (m Metadata) Mode() fs.FileMode { return m.Info.Mode() }

// Size returns the size in bytes.
func (m Metadata) Size() int64 { return m.Info.Size() }

// ModTime returns the last modification time.
func (m Metadata) ModTime() time.Time { return m.Info.ModTime() }

// IsDir reports whether the entry itself is a directory. Symlinks to
// directories are not.
func (m Metadata) IsDir() bool { return m.Info.IsDir() }

// IsSymlink reports whether the entry is a symbolic link.
func (m Metadata) IsSymlink() bool { return m.Info.Mode()&fs.ModeSymlink != 0 }

// IsExecutable reports whether any execute bit is set.
func (m Metadata) IsExecutable() bool { return m.Info.Mode().Perm()&0o111 != 0 }

// Stat reads metadata for path without following a trailing symlink.
func Stat(path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}

	meta := Metadata{Info: info, Nlink: 1}
	fillSys(path, &meta)

	if meta.IsSymlink() {
		if target, err := os.Readlink(path); err == nil {
			meta.LinkTarget = target
		}
	}
	return meta, nil
}
