package jffs2

import "github.com/jffs2team/jffs2extract/internal/binary"

// xattrFixedLen is the XATTR node's fixed portion before name+value data.
const xattrFixedLen = 32

// xrefFixedLen is the XREF node's entire fixed size (it carries no payload).
const xrefFixedLen = 28

// Xattr is a catalogued extended-attribute node. It is not consulted during
// materialization (xattr value verification is out of scope), only counted
// and reported.
type Xattr struct {
	Xid      uint32
	Version  uint32
	Xprefix  uint8
	NameLen  uint8
	ValueLen uint16
}

// decodeXattr decodes an XATTR node's fixed fields.
func decodeXattr(buf []byte, off int, order binary.Order) (Xattr, error) {
	if off+xattrFixedLen > len(buf) {
		return Xattr{}, ErrShortBuffer
	}
	return Xattr{
		Xid:      binary.Uint32(order, buf[off+12:off+16]),
		Version:  binary.Uint32(order, buf[off+16:off+20]),
		Xprefix:  buf[off+20],
		NameLen:  buf[off+21],
		ValueLen: binary.Uint16(order, buf[off+22:off+24]),
	}, nil
}

// Xref is a catalogued inode-to-xattr reference node. Not consulted during
// materialization.
type Xref struct {
	Ino    uint32
	Xid    uint32
	Xseqno uint32
}

// decodeXref decodes an XREF node's fixed fields.
func decodeXref(buf []byte, off int, order binary.Order) (Xref, error) {
	if off+xrefFixedLen > len(buf) {
		return Xref{}, ErrShortBuffer
	}
	return Xref{
		Ino:    binary.Uint32(order, buf[off+12:off+16]),
		Xid:    binary.Uint32(order, buf[off+16:off+20]),
		Xseqno: binary.Uint32(order, buf[off+20:off+24]),
	}, nil
}

// Summary is a catalogued SUMMARY node. Its internal per-node index is not
// parsed: the scanner already discovers every node directly, so the
// summary's own accounting is redundant for extraction and only its
// presence and size are recorded.
type Summary struct {
	Totlen uint32
}

// decodeSummary catalogues a SUMMARY node without parsing its body.
func decodeSummary(totlen uint32) Summary {
	return Summary{Totlen: totlen}
}
