package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// defaultLZMADictSize is JFFS2's common fragment dictionary size (8 KiB).
// Images built with a dictionary covering a larger NAND page still decode
// correctly: the dictionary only bounds how far back a match may reach, and
// a larger configured value is always safe for a smaller actual window.
const defaultLZMADictSize = 8 * 1024

// jffs2LZMAProps is the fixed LZMA properties byte JFFS2 always uses:
// lc=0, lp=0, pb=0, encoded as lc + lp*9 + pb*45 = 0.
const jffs2LZMAProps = 0x00

func init() {
	Register(CodeLZMA, func() Decoder { return &lzmaDecoder{dictSize: defaultLZMADictSize} })
}

// lzmaDecoder implements JFFS2's embedded-LZMA variant: a raw LZMA1
// bitstream with no 13-byte container header. Properties are fixed at
// lc=0, lp=0, pb=0. github.com/ulikunitz/xz/lzma expects the standard
// header, so one is synthesized in front of the payload before handing it
// to the library, the same trick the teacher's CHD LZMA codec uses for
// CHD's own header-less LZMA streams (there with lc=3,lp=0,pb=2; here with
// JFFS2's fixed lc=0,lp=0,pb=0).
type lzmaDecoder struct {
	dictSize uint32
}

// WithDictSize returns a decoder using dictSize instead of the 8 KiB
// default. Implementations that must accept images built against a larger
// NAND page dictionary should call this with that page size.
func (d *lzmaDecoder) WithDictSize(dictSize uint32) *lzmaDecoder {
	return &lzmaDecoder{dictSize: dictSize}
}

// Decompress decodes a raw JFFS2 LZMA1 stream to expectedLen bytes.
func (d *lzmaDecoder) Decompress(compressed []byte, expectedLen int) ([]byte, error) {
	if expectedLen == 0 {
		return []byte{}, nil
	}
	if len(compressed) == 0 {
		return nil, fmt.Errorf("%w: lzma: empty source, expected %d bytes", ErrDecompress, expectedLen)
	}

	dictSize := d.dictSize
	if dictSize == 0 {
		dictSize = defaultLZMADictSize
	}

	header := make([]byte, 13)
	header[0] = jffs2LZMAProps
	binary.LittleEndian.PutUint32(header[1:5], dictSize)
	//nolint:gosec // expectedLen is bounded by a node's 32-bit dsize field
	binary.LittleEndian.PutUint64(header[5:13], uint64(expectedLen))

	stream := make([]byte, 0, len(header)+len(compressed))
	stream = append(stream, header...)
	stream = append(stream, compressed...)

	reader, err := lzma.NewReader(bytes.NewReader(stream))
	if err != nil {
		return nil, fmt.Errorf("%w: lzma init: %w", ErrDecompress, err)
	}

	out := make([]byte, expectedLen)
	n, err := io.ReadFull(reader, out)
	if err != nil {
		return nil, fmt.Errorf("%w: lzma read: got %d of %d bytes: %w", ErrDecompress, n, expectedLen, err)
	}

	return out, nil
}
