package jffs2

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/jffs2team/jffs2extract/internal/logx"
)

func TestDecodeInodeRoundTrip(t *testing.T) {
	t.Parallel()

	data := []byte("file contents go here")
	node := encodeInode(binary.LittleEndian, 42, 1, ModeReg|0o644, 0, 0, uint32(len(data)), 0, data)
	h, err := decodeHeader(node, 0, binary.LittleEndian)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}

	in, err := decodeInode(node, 0, binary.LittleEndian, h.Totlen, logx.Discard)
	if err != nil {
		t.Fatalf("decodeInode: %v", err)
	}
	if in.Ino != 42 || in.Version != 1 || in.Mode != ModeReg|0o644 {
		t.Fatalf("got %+v", in)
	}
	if !bytes.Equal(in.Data, data) {
		t.Fatalf("got data %q, want %q", in.Data, data)
	}
	if !in.NodeCRCOK || !in.DataCRCOK {
		t.Fatalf("got NodeCRCOK=%v DataCRCOK=%v, want both true", in.NodeCRCOK, in.DataCRCOK)
	}
	if in.DecompressFailed {
		t.Error("DecompressFailed = true for a valid NONE-compressed node")
	}
}

func TestDecodeInodeBadDataCRCKeepsNode(t *testing.T) {
	t.Parallel()

	data := []byte("abcdefgh")
	node := encodeInode(binary.BigEndian, 7, 1, ModeReg|0o644, 0, 0, uint32(len(data)), 0, data)
	dataStart := inodeFixedLen
	node[dataStart] ^= 0xff // corrupt payload without touching declared csize/dsize

	h, err := decodeHeader(node, 0, binary.BigEndian)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	in, err := decodeInode(node, 0, binary.BigEndian, h.Totlen, logx.Discard)
	if err != nil {
		t.Fatalf("decodeInode: %v", err)
	}
	if in.DataCRCOK {
		t.Error("DataCRCOK = true after corrupting the payload")
	}
	// NONE decompression still succeeds on corrupted bytes; the node is
	// retained with whatever bytes were present, per CORRUPTION handling.
	if len(in.Data) != len(data) {
		t.Fatalf("got %d bytes, want %d", len(in.Data), len(data))
	}
}
