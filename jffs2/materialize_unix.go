//go:build unix

package jffs2

import (
	"os"

	"golang.org/x/sys/unix"
)

// mknod creates a character or block device node at path using the host's
// mknod(2) syscall.
func mknod(path string, perm os.FileMode, isChar bool, major, minor uint32) error {
	mode := uint32(perm.Perm())
	if isChar {
		mode |= unix.S_IFCHR
	} else {
		mode |= unix.S_IFBLK
	}
	return unix.Mknod(path, mode, int(unix.Mkdev(major, minor)))
}
