//go:build !unix

package fsinfo

import "os"

func fillSys(string, *Metadata) {}

// Blocks estimates the 512-byte block count of path from its size, following symlinks.
func Blocks(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return (info.Size() + 511) / 512, true
}
