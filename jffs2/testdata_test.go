package jffs2

import (
	jbinary "github.com/jffs2team/jffs2extract/internal/binary"
	"github.com/jffs2team/jffs2extract/mtdcrc"
)

// The helpers in this file hand-encode minimal JFFS2 node byte streams so
// scanner and materializer tests exercise the real wire format without
// shipping binary testdata fixtures.

func put16(order jbinary.Order, v uint16) []byte {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	return b
}

func put32(order jbinary.Order, v uint32) []byte {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	return b
}

func padTo4(buf []byte) []byte {
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

// encodeDirent builds one complete, padded DIRENT node.
func encodeDirent(order jbinary.Order, pino, version, ino, mctime uint32, dtype uint8, name string) []byte {
	nameBytes := []byte(name)
	totlen := uint32(direntFixedLen + len(nameBytes))

	body := make([]byte, 0, direntFixedLen+len(nameBytes))
	body = append(body, put32(order, pino)...)
	body = append(body, put32(order, version)...)
	body = append(body, put32(order, ino)...)
	body = append(body, put32(order, mctime)...)
	body = append(body, byte(len(nameBytes)), dtype)
	body = append(body, put16(order, 0)...) // unused

	nodeCRC := mtdcrc.Checksum(append(headerBytes(order, NodetypeDirent, totlen), body...))
	body = append(body, put32(order, nodeCRC)...)
	nameCRC := mtdcrc.Checksum(nameBytes)
	body = append(body, put32(order, nameCRC)...)
	body = append(body, nameBytes...)

	node := append(headerBytes(order, NodetypeDirent, totlen), body...)
	return padTo4(node)
}

// encodeInode builds one complete, padded INODE node carrying data
// compressed with compress.CodeNone (so compressed == decompressed).
func encodeInode(order jbinary.Order, ino, version, mode uint32, uid, gid uint16, isize, offset uint32, data []byte) []byte {
	dsize := uint32(len(data))
	totlen := uint32(inodeFixedLen) + dsize

	fields := make([]byte, 0, 56)
	fields = append(fields, put32(order, ino)...)
	fields = append(fields, put32(order, version)...)
	fields = append(fields, put32(order, mode)...)
	fields = append(fields, put16(order, uid)...)
	fields = append(fields, put16(order, gid)...)
	fields = append(fields, put32(order, isize)...)
	fields = append(fields, put32(order, 0)...) // atime
	fields = append(fields, put32(order, 0)...) // mtime
	fields = append(fields, put32(order, 0)...) // ctime
	fields = append(fields, put32(order, offset)...)
	fields = append(fields, put32(order, dsize)...) // csize == dsize for CodeNone
	fields = append(fields, put32(order, dsize)...) // dsize
	fields = append(fields, byte(0x00))             // compr = CodeNone
	fields = append(fields, byte(0x00))             // usercompr
	fields = append(fields, put16(order, 0)...)     // flags

	dataCRC := mtdcrc.Checksum(data)
	fields = append(fields, put32(order, dataCRC)...)

	hdr := headerBytes(order, NodetypeInode, totlen)
	nodeCRCInput := append(append([]byte(nil), hdr[4:]...), fields...)
	nodeCRC := mtdcrc.Checksum(nodeCRCInput)
	fields = append(fields, put32(order, nodeCRC)...)
	fields = append(fields, data...)

	node := append(hdr, fields...)
	return padTo4(node)
}

// headerBytes builds an unpadded common header (magic, nodetype, totlen,
// hdr_crc) for the given declared totlen.
func headerBytes(order jbinary.Order, nodetype uint16, totlen uint32) []byte {
	h := make([]byte, 0, headerLen)
	h = append(h, put16(order, Magic)...)
	h = append(h, put16(order, nodetype)...)
	h = append(h, put32(order, totlen)...)
	hdrCRC := mtdcrc.Checksum(h)
	h = append(h, put32(order, hdrCRC)...)
	return h
}
