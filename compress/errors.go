package compress

import "errors"

// ErrDecompress indicates a decompressor failed to produce valid output.
var ErrDecompress = errors.New("decompression failed")

// ErrUnsupported indicates no decoder is registered for a compression code.
var ErrUnsupported = errors.New("unsupported compression code")
