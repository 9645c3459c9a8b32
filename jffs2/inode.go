package jffs2

import (
	"github.com/jffs2team/jffs2extract/compress"
	"github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/internal/logx"
	"github.com/jffs2team/jffs2extract/mtdcrc"
)

// inodeFixedLen is the INODE node's fixed portion: header (12) through
// node_crc, before the compressed data payload.
const inodeFixedLen = 68

// Mode bits, the subset the materializer switches on (Unix S_IFMT values).
const (
	ModeFmt  = 0o170000
	ModeFIFO = 0o010000
	ModeChr  = 0o020000
	ModeDir  = 0o040000
	ModeBlk  = 0o060000
	ModeReg  = 0o100000
	ModeLnk  = 0o120000
	ModeSock = 0o140000
)

// Inode is a decoded JFFS2 inode node: one fragment of one version of one
// file's data (or its sole record, for non-regular files).
type Inode struct {
	Ino     uint32
	Version uint32
	Mode    uint32
	UID     uint16
	GID     uint16
	Isize   uint32
	Offset  uint32
	Csize   uint32
	Dsize   uint32
	Compr   compress.Code

	Data []byte // decompressed, length Dsize on success

	NodeCRCOK        bool
	DataCRCOK        bool
	DecompressFailed bool
}

// decodeInode decodes an INODE node's fixed fields and decompresses its
// payload. hdr_crc has already been validated by decodeHeader. node_crc and
// data_crc mismatches, and decompression failures, are CORRUPTION/
// DECOMPRESS: they are logged and the node is retained with its Data set to
// whatever the decoder managed (a zero-filled placeholder on hard failure),
// never returned as an error that would drop the node.
func decodeInode(buf []byte, off int, order binary.Order, totlen uint32, log *logx.Logger) (Inode, error) {
	if off+inodeFixedLen > len(buf) {
		return Inode{}, ErrShortBuffer
	}

	in := Inode{
		Ino:     binary.Uint32(order, buf[off+12:off+16]),
		Version: binary.Uint32(order, buf[off+16:off+20]),
		Mode:    binary.Uint32(order, buf[off+20:off+24]),
		UID:     binary.Uint16(order, buf[off+24:off+26]),
		GID:     binary.Uint16(order, buf[off+26:off+28]),
		Isize:   binary.Uint32(order, buf[off+28:off+32]),
		Offset:  binary.Uint32(order, buf[off+44:off+48]),
		Csize:   binary.Uint32(order, buf[off+48:off+52]),
		Dsize:   binary.Uint32(order, buf[off+52:off+56]),
		Compr:   compress.Code(buf[off+56]),
	}
	dataCRC := binary.Uint32(order, buf[off+60:off+64])
	nodeCRC := binary.Uint32(order, buf[off+64:off+68])
	in.NodeCRCOK = mtdcrc.Verify(buf[off+4:off+64], nodeCRC)

	dataStart := off + inodeFixedLen
	dataEnd := dataStart + int(in.Csize)
	if dataEnd > len(buf) || uint32(dataEnd-off) > totlen {
		return Inode{}, ErrShortBuffer
	}
	compressed := buf[dataStart:dataEnd]
	in.DataCRCOK = mtdcrc.Verify(compressed, dataCRC)

	data, err := compress.Decompress(in.Compr, compressed, int(in.Dsize))
	if err != nil {
		if log != nil {
			log.Warnf("ino %d version %d: decompress (%s): %v", in.Ino, in.Version, in.Compr, err)
		}
		data = make([]byte, in.Dsize)
		in.DecompressFailed = true
	}
	in.Data = data

	if !in.NodeCRCOK && log != nil {
		log.Warnf("ino %d version %d: node_crc: %v", in.Ino, in.Version, ErrNodeCRC)
	}
	if !in.DataCRCOK && log != nil {
		log.Warnf("ino %d version %d: data_crc: %v", in.Ino, in.Version, ErrNodeCRC)
	}

	return in, nil
}
