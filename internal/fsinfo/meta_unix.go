//go:build unix

package fsinfo

import "golang.org/x/sys/unix"

func fillSys(path string, meta *Metadata) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return
	}
	meta.Nlink = uint64(st.Nlink)
	meta.UID = st.Uid
	meta.GID = st.Gid
	meta.Blocks = int64(st.Blocks)
}

// Blocks returns the 512-byte block count of path, following symlinks.
func Blocks(path string) (int64, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, false
	}
	return int64(st.Blocks), true
}
