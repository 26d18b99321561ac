package fsinfo

import (
	"fmt"
	"io/fs"
	"os/user"
	"strconv"
	"time"
)

const dateLayout = "Jan _2 15:04"

// Permissions renders the mode as ls does, e.g. "drwxr-xr-x".
func Permissions(mode fs.FileMode) string {
	var kind byte
	switch {
	case mode&fs.ModeSymlink != 0:
		kind = 'l'
	case mode.IsDir():
		kind = 'd'
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		kind = 'c'
	case mode&fs.ModeDevice != 0:
		kind = 'b'
	default:
		kind = '-'
	}

	perm := mode.Perm()
	return string(kind) + triplet(uint32(perm>>6)) + triplet(uint32(perm>>3)) + triplet(uint32(perm))
}

func triplet(bits uint32) string {
	b := []byte("---")
	if bits&0o4 != 0 {
		b[0] = 'r'
	}
	if bits&0o2 != 0 {
		b[1] = 'w'
	}
	if bits&0o1 != 0 {
		b[2] = 'x'
	}
	return string(b)
}

// HumanSize formats a byte count with a binary unit suffix: 512B, 1.5K, 3.0M.
func HumanSize(size int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)

	switch {
	case size >= tb:
		return fmt.Sprintf("%.1fT", float64(size)/tb)
	case size >= gb:
		return fmt.Sprintf("%.1fG", float64(size)/gb)
	case size >= mb:
		return fmt.Sprintf("%.1fM", float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%.1fK", float64(size)/kb)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

// FormatDate renders a modification time in local time, e.g. "Mar  7 14:05".
func FormatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// NameCache resolves numeric owner and group IDs to names, remembering results.
// Unknown IDs resolve to their decimal form.
type NameCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

// NewNameCache returns an empty cache.
func NewNameCache() *NameCache {
	return &NameCache{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// User returns the login name for uid.
func (c *NameCache) User(uid uint32) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		name = u.Username
	}
	c.users[uid] = name
	return name
}

// Group returns the group name for gid.
func (c *NameCache) Group(gid uint32) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		name = g.Name
	}
	c.groups[gid] = name
	return name
}
