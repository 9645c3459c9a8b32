package compress

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

func init() {
	Register(CodeZlib, func() Decoder { return zlibDecoder{} })
}

// zlibDecoder implements JFFS2's ZLIB codec. Unlike CHD (which stores raw
// DEFLATE), JFFS2 wraps the DEFLATE stream in a zlib header, so this uses
// compress/zlib rather than compress/flate.
type zlibDecoder struct{}

// Decompress inflates a zlib-wrapped payload to expectedLen bytes.
func (zlibDecoder) Decompress(compressed []byte, expectedLen int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %w", ErrDecompress, err)
	}
	defer func() { _ = reader.Close() }()

	out := make([]byte, expectedLen)
	n, err := io.ReadFull(reader, out)
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: got %d of %d bytes: %w", ErrDecompress, n, expectedLen, err)
	}

	return out, nil
}
