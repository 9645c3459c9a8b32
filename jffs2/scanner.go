package jffs2

import (
	jbinary "github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/internal/logx"
)

// LogicalFS is one bucket of nodes discovered by a scan pass: a contiguous
// run of nodes that never repeats an inode number in a DIRENT, meaning the
// scanner judges it to be one coherent filesystem image rather than the
// tail of an erased-and-reformatted one.
type LogicalFS struct {
	BigEndian bool

	Dirents   []Dirent
	Inodes    []Inode
	Xattrs    []Xattr
	Xrefs     []Xref
	Summaries []Summary
}

func newLogicalFS(bigEndian bool) *LogicalFS {
	return &LogicalFS{BigEndian: bigEndian}
}

// Scan searches buf for JFFS2 nodes under the given byte order, splitting
// into successive LogicalFS buckets whenever a DIRENT repeats an inode
// number already seen in the current bucket.
func Scan(buf []byte, order jbinary.Order, bigEndian bool, log *logx.Logger) []*LogicalFS {
	if log == nil {
		log = logx.Discard
	}

	needle := make([]byte, 2)
	order.PutUint16(needle, Magic)

	filesystems := []*LogicalFS{newLogicalFS(bigEndian)}
	cur := filesystems[0]
	seen := make(map[uint32]struct{})

	pos := 0
	for pos <= len(buf)-headerLen {
		idx := jbinary.FindBytes(buf[pos:], needle)
		if idx < 0 {
			break
		}
		candidate := pos + idx

		hdr, err := decodeHeader(buf, candidate, order)
		if err != nil {
			pos = candidate + 1
			continue
		}

		next := candidate + int(pad4(hdr.Totlen))
		if next <= candidate {
			pos = candidate + 1
			continue
		}

		switch hdr.Nodetype {
		case NodetypeDirent:
			d, derr := decodeDirent(buf, candidate, order, hdr.Totlen)
			if derr != nil {
				log.Warnf("dirent at %d: %v", candidate, derr)
				break
			}
			if !d.NodeCRCOK {
				log.Warnf("dirent at %d (ino %d): %v", candidate, d.Ino, ErrNodeCRC)
			}
			if !d.NameCRCOK {
				log.Warnf("dirent at %d (ino %d): %v", candidate, d.Ino, ErrNameCRC)
			}
			if _, dup := seen[d.Ino]; dup {
				log.Infof("duplicate ino %d at %d: starting new logical filesystem", d.Ino, candidate)
				cur = newLogicalFS(bigEndian)
				filesystems = append(filesystems, cur)
				seen = make(map[uint32]struct{})
			}
			seen[d.Ino] = struct{}{}
			cur.Dirents = append(cur.Dirents, d)

		case NodetypeInode:
			in, ierr := decodeInode(buf, candidate, order, hdr.Totlen, log)
			if ierr != nil {
				log.Warnf("inode at %d: %v", candidate, ierr)
				break
			}
			cur.Inodes = append(cur.Inodes, in)

		case NodetypeXattr:
			x, xerr := decodeXattr(buf, candidate, order)
			if xerr != nil {
				log.Warnf("xattr at %d: %v", candidate, xerr)
				break
			}
			cur.Xattrs = append(cur.Xattrs, x)

		case NodetypeXref:
			x, xerr := decodeXref(buf, candidate, order)
			if xerr != nil {
				log.Warnf("xref at %d: %v", candidate, xerr)
				break
			}
			cur.Xrefs = append(cur.Xrefs, x)

		case NodetypeSummary:
			cur.Summaries = append(cur.Summaries, decodeSummary(hdr.Totlen))

		case NodetypeCleanmarker, NodetypePadding:
			// ignored

		default:
			log.Debugf("node at %d: unrecognized nodetype %#x, skipping", candidate, hdr.Nodetype)
		}

		pos = next
	}

	return filesystems
}
