//go:build windows

package jffs2

import "os"

// mknod is unsupported on Windows: there is no host equivalent of a Unix
// device node, so device inodes are reported and skipped rather than
// created.
func mknod(_ string, _ os.FileMode, _ bool, _, _ uint32) error {
	return ErrMaterializeIO
}
