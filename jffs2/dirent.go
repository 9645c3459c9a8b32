package jffs2

import (
	"github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/mtdcrc"
)

// direntFixedLen is the DIRENT node's fixed portion: header (12) plus
// pino, version, ino, mctime, nsize, type, unused, node_crc, name_crc.
const direntFixedLen = 40

// Dirent type codes, matching the on-disk type byte (Linux d_type values).
const (
	DtUnknown = 0
	DtFIFO    = 1
	DtChr     = 2
	DtDir     = 4
	DtBlk     = 6
	DtReg     = 8
	DtLnk     = 10
	DtSock    = 12
)

// Dirent is a decoded JFFS2 directory entry node.
type Dirent struct {
	Pino    uint32
	Version uint32
	Ino     uint32 // 0 means unlink
	Mctime  uint32
	Type    uint8
	Name    []byte

	NodeCRCOK bool
	NameCRCOK bool
}

// decodeDirent decodes a DIRENT node body (the fixed 40-byte portion plus
// its name) starting at off, given the already-validated common header.
// hdr_crc has already been checked by decodeHeader; node_crc and name_crc
// mismatches are CORRUPTION, reported via the returned flags rather than an
// error, since the spec keeps the node even when they disagree.
func decodeDirent(buf []byte, off int, order binary.Order, totlen uint32) (Dirent, error) {
	if off+direntFixedLen > len(buf) {
		return Dirent{}, ErrShortBuffer
	}

	pino := binary.Uint32(order, buf[off+12:off+16])
	version := binary.Uint32(order, buf[off+16:off+20])
	ino := binary.Uint32(order, buf[off+20:off+24])
	mctime := binary.Uint32(order, buf[off+24:off+28])
	nsize := buf[off+28]
	dtype := buf[off+29]
	nodeCRC := binary.Uint32(order, buf[off+32:off+36])
	nameCRC := binary.Uint32(order, buf[off+36:off+40])

	nameStart := off + direntFixedLen
	nameEnd := nameStart + int(nsize)
	if nameEnd > len(buf) || uint32(nameEnd-off) > totlen {
		return Dirent{}, ErrShortBuffer
	}
	name := append([]byte(nil), buf[nameStart:nameEnd]...)

	d := Dirent{
		Pino:      pino,
		Version:   version,
		Ino:       ino,
		Mctime:    mctime,
		Type:      dtype,
		Name:      name,
		NodeCRCOK: mtdcrc.Verify(buf[off:off+32], nodeCRC),
		NameCRCOK: mtdcrc.Verify(name, nameCRC),
	}
	return d, nil
}
