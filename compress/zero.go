package compress

func init() {
	Register(CodeZero, func() Decoder { return zeroDecoder{} })
}

// zeroDecoder implements JFFS2's ZERO codec: a hole, represented on disk
// with no payload at all. The input is ignored.
type zeroDecoder struct{}

// Decompress returns expectedLen zero bytes regardless of compressed.
func (zeroDecoder) Decompress(_ []byte, expectedLen int) ([]byte, error) {
	return make([]byte, expectedLen), nil
}
