// Package jffs2 scans a raw JFFS2 image for nodes and materializes the
// directory tree they describe onto a host filesystem.
package jffs2

import (
	"github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/mtdcrc"
)

// Magic is the two-byte value every JFFS2 node header starts with, decoded
// in whichever endianness the current scan pass uses.
const Magic = 0x1985

// Node type codes, matching nodetype's on-disk values.
const (
	NodetypeDirent      = 0xe001
	NodetypeInode       = 0xe002
	NodetypeCleanmarker = 0x2003
	NodetypePadding     = 0x2004
	NodetypeSummary     = 0x2006
	NodetypeXattr       = 0xe008
	NodetypeXref        = 0xe009
)

// headerLen is the size of the common node header: magic, nodetype, totlen,
// hdr_crc.
const headerLen = 12

// header is the common 12-byte node header every node starts with.
type header struct {
	Magic    uint16
	Nodetype uint16
	Totlen   uint32
	HdrCRC   uint32
}

// decodeHeader reads a common header from buf at offset off under order.
// It returns ErrShortBuffer if fewer than headerLen bytes remain, and
// ErrHeaderCRC if the header's own CRC does not match — both STRUCTURAL:
// the caller advances the scan cursor by one byte and retries.
func decodeHeader(buf []byte, off int, order binary.Order) (header, error) {
	if off < 0 || off+headerLen > len(buf) {
		return header{}, ErrShortBuffer
	}
	h := header{
		Magic:    binary.Uint16(order, buf[off:off+2]),
		Nodetype: binary.Uint16(order, buf[off+2:off+4]),
		Totlen:   binary.Uint32(order, buf[off+4:off+8]),
		HdrCRC:   binary.Uint32(order, buf[off+8:off+12]),
	}
	if !mtdcrc.Verify(buf[off:off+8], h.HdrCRC) {
		return header{}, ErrHeaderCRC
	}
	return h, nil
}

// pad4 rounds n up to the next multiple of 4, JFFS2's node alignment.
func pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
