package jffs2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	jbinary "github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/internal/logx"
)

const maxPathDepth = 100

// FileWriter is the subset of *os.File the materializer needs to lay down
// overlapping inode version writes at arbitrary offsets.
type FileWriter interface {
	io.WriterAt
	io.Closer
}

// Sink abstracts the host filesystem operations materialization performs,
// so --dry-run can reuse the exact same join/resolve/write logic against a
// sink that never touches disk.
type Sink interface {
	MkdirAll(path string, perm os.FileMode) error
	Lstat(path string) (os.FileInfo, error)
	CreateFile(path string, perm os.FileMode) (FileWriter, error)
	Symlink(target, path string) error
	Mknod(path string, perm os.FileMode, isChar bool, major, minor uint32) error
}

// osSink implements Sink against the real host filesystem.
type osSink struct{}

func (osSink) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (osSink) Lstat(path string) (os.FileInfo, error)       { return os.Lstat(path) }

func (osSink) CreateFile(path string, perm os.FileMode) (FileWriter, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}

func (osSink) Symlink(target, path string) error { return os.Symlink(target, path) }

func (osSink) Mknod(path string, perm os.FileMode, isChar bool, major, minor uint32) error {
	return mknod(path, perm, isChar, major, minor)
}

// NewOSSink returns a Sink that performs real host filesystem writes.
func NewOSSink() Sink { return osSink{} }

// discardWriter implements FileWriter without writing anything, for
// --dry-run materialization.
type discardWriter struct{}

func (discardWriter) WriteAt(p []byte, _ int64) (int, error) { return len(p), nil }
func (discardWriter) Close() error                           { return nil }

// dryRunSink implements Sink with no host effects: every path is reported
// as absent, writes are discarded, and creation calls always succeed. Used
// to run scanning, joining, and path resolution without touching disk.
type dryRunSink struct{}

func (dryRunSink) MkdirAll(string, os.FileMode) error { return nil }
func (dryRunSink) Lstat(string) (os.FileInfo, error)  { return nil, os.ErrNotExist }

func (dryRunSink) CreateFile(string, os.FileMode) (FileWriter, error) {
	return discardWriter{}, nil
}
func (dryRunSink) Symlink(string, string) error                          { return nil }
func (dryRunSink) Mknod(string, os.FileMode, bool, uint32, uint32) error { return nil }

// NewDryRunSink returns a Sink that performs no host writes.
func NewDryRunSink() Sink { return dryRunSink{} }

// order returns the byte order nodes in this logical filesystem were
// decoded under, needed to reinterpret a CHR/BLK inode's raw data payload.
func (fs *LogicalFS) order() jbinary.Order {
	if fs.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Materialize joins fs's dirents and inodes, resolves every dirent's path,
// and writes the result under destDir via sink. I/O and encoding failures
// on one dirent are logged and do not prevent the rest from materializing.
func Materialize(fs *LogicalFS, destDir string, sink Sink, log *logx.Logger) error {
	if log == nil {
		log = logx.Discard
	}

	inoToDirent := make(map[uint32]*Dirent, len(fs.Dirents))
	for i := range fs.Dirents {
		d := &fs.Dirents[i]
		if _, dup := inoToDirent[d.Ino]; dup {
			log.Warnf("ino %d: second dirent claims this inode, keeping the first", d.Ino)
			continue
		}
		inoToDirent[d.Ino] = d
	}

	inoToInodes := make(map[uint32][]*Inode, len(fs.Inodes))
	for i := range fs.Inodes {
		in := &fs.Inodes[i]
		inoToInodes[in.Ino] = append(inoToInodes[in.Ino], in)
	}

	for i := range fs.Dirents {
		d := &fs.Dirents[i]
		if d.Ino == 0 {
			continue // unlink marker, nothing to materialize
		}

		relPath, err := resolvePath(d, inoToDirent)
		if err != nil {
			log.Warnf("dirent %q (ino %d): %v", cleanNameForLog(d.Name), d.Ino, err)
			continue
		}

		inodes := inoToInodes[d.Ino]
		if len(inodes) == 0 {
			log.Warnf("%s: no inode record for ino %d, skipping", relPath, d.Ino)
			continue
		}

		fullPath := filepath.Join(destDir, relPath)
		if err := materializeOne(fs, fullPath, inodes, sink, log); err != nil {
			log.Warnf("%s: %v", relPath, err)
		}
	}

	return nil
}

// resolvePath walks d's pino chain through inoToDirent up to maxPathDepth,
// building the path from root. pino == 0 marks the implicit root anchor.
func resolvePath(d *Dirent, inoToDirent map[uint32]*Dirent) (string, error) {
	name, err := utf8Name(d.Name)
	if err != nil {
		return "", err
	}
	parts := []string{name}

	pino := d.Pino
	for depth := 0; pino != 0; depth++ {
		if depth >= maxPathDepth {
			return "", ErrPathDepth
		}
		parent, ok := inoToDirent[pino]
		if !ok {
			break
		}
		pname, err := utf8Name(parent.Name)
		if err != nil {
			return "", err
		}
		parts = append(parts, pname)
		pino = parent.Pino
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return filepath.Join(parts...), nil
}

func utf8Name(name []byte) (string, error) {
	if !utf8.Valid(name) {
		return "", ErrNonUTF8Name
	}
	return string(name), nil
}

func cleanNameForLog(name []byte) string {
	if utf8.Valid(name) {
		return string(name)
	}
	return fmt.Sprintf("%x", name)
}

// newestInode returns the inode record with the highest version number,
// the one whose declared isize is authoritative when several versions of
// the same file disagree on its final size.
func newestInode(inodes []*Inode) *Inode {
	newest := inodes[0]
	for _, in := range inodes[1:] {
		if in.Version > newest.Version {
			newest = in
		}
	}
	return newest
}

// materializeOne writes a single joined dirent+inode-chain to fullPath,
// dispatching on the mode of the first attached inode record.
func materializeOne(fs *LogicalFS, fullPath string, inodes []*Inode, sink Sink, log *logx.Logger) error {
	first := inodes[0]
	perm := os.FileMode(first.Mode & 0o7777)

	switch first.Mode & ModeFmt {
	case ModeDir:
		if err := sink.MkdirAll(fullPath, perm|0o700); err != nil {
			return fmt.Errorf("%w: mkdir: %w", ErrMaterializeIO, err)
		}

	case ModeLnk:
		if info, err := sink.Lstat(fullPath); err == nil && info.Mode()&os.ModeSymlink == 0 {
			log.Warnf("%s: non-symlink already exists, skipping", fullPath)
			return nil
		}
		if err := sink.Symlink(string(first.Data), fullPath); err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: symlink: %w", ErrMaterializeIO, err)
		}

	case ModeReg:
		if err := sink.MkdirAll(filepath.Dir(fullPath), 0o700); err != nil {
			return fmt.Errorf("%w: mkdir parent: %w", ErrMaterializeIO, err)
		}
		w, err := sink.CreateFile(fullPath, perm)
		if err != nil {
			return fmt.Errorf("%w: create: %w", ErrMaterializeIO, err)
		}
		var written, maxVersion uint32
		for i, in := range inodes {
			if i > 0 && in.Version < maxVersion {
				log.Infof("%s: version %d scanned after version %d, applying in scan order", fullPath, in.Version, maxVersion)
			}
			maxVersion = max(maxVersion, in.Version)
			if _, err := w.WriteAt(in.Data, int64(in.Offset)); err != nil {
				_ = w.Close()
				return fmt.Errorf("%w: write at %d: %w", ErrMaterializeIO, in.Offset, err)
			}
			if end := in.Offset + uint32(len(in.Data)); end > written {
				written = end
			}
		}
		if c, ok := w.(interface{ Chmod(os.FileMode) error }); ok {
			mode := perm.Perm()
			for bit, flag := range map[uint32]os.FileMode{0o4000: os.ModeSetuid, 0o2000: os.ModeSetgid, 0o1000: os.ModeSticky} {
				if first.Mode&bit != 0 {
					mode |= flag
				}
			}
			if err := c.Chmod(mode); err != nil {
				_ = w.Close()
				return fmt.Errorf("%w: chmod: %w", ErrMaterializeIO, err)
			}
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("%w: close: %w", ErrMaterializeIO, err)
		}
		if newest := newestInode(inodes); newest.Isize != written {
			log.Infof("%s: isize %d disagrees with %d bytes written, keeping written length", fullPath, newest.Isize, written)
		}

	case ModeChr, ModeBlk:
		dev := decodeDeviceID(first.Data, fs.order())
		if !dev.OK {
			log.Warnf("%s: unrecognized device id payload (%d bytes), skipping", fullPath, len(first.Data))
			return nil
		}
		if err := sink.Mknod(fullPath, perm, first.Mode&ModeFmt == ModeChr, dev.Major, dev.Minor); err != nil {
			return fmt.Errorf("%w: mknod: %w", ErrMaterializeIO, err)
		}

	case ModeFIFO, ModeSock:
		log.Infof("%s: fifo/socket nodes are not created on the host, skipping", fullPath)

	default:
		log.Warnf("%s: unrecognized mode %#o, skipping", fullPath, first.Mode)
	}

	return nil
}
