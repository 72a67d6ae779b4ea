//go:build unix

package u2d

import (
	"syscall"

	"lesiw.io/fs"
)

// links returns the number of hard links to the file described by info,
// or 1 if the file system does not say.
func links(info fs.FileInfo) uint64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Nlink) // uint16 on darwin.
	}
	return 1
}
