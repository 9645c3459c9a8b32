// Package compress implements the byte-in/byte-out decompressors for the
// compression codes a JFFS2 inode node may carry: NONE, ZERO, ZLIB, RTIME
// and LZMA. Each Decoder takes the compressed payload and the uncompressed
// length the node declares (dsize) and returns the uncompressed bytes.
package compress

import "sync"

// Code identifies a JFFS2 inode compression scheme. Values match the
// on-disk compr byte.
type Code uint8

// Compression codes used by JFFS2 inode nodes.
const (
	CodeNone      Code = 0x00
	CodeZero      Code = 0x01
	CodeRTIME     Code = 0x02
	CodeRubinMIPS Code = 0x03
	CodeCopy      Code = 0x04
	CodeDynrubin  Code = 0x05
	CodeZlib      Code = 0x06
	CodeLZO       Code = 0x07
	CodeLZMA      Code = 0x08
)

// Decoder decompresses a node's compressed payload.
// expectedLen is the node's declared uncompressed length (dsize); the
// decoder must produce exactly that many bytes or return an error wrapping
// ErrDecompress.
type Decoder interface {
	Decompress(compressed []byte, expectedLen int) ([]byte, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[Code]func() Decoder)
)

// Register installs a decoder factory for a compression code. Called from
// each codec file's init, mirroring the chd package's codec registry.
func Register(code Code, factory func() Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[code] = factory
}

// Get returns a decoder instance for the given compression code.
func Get(code Code) (Decoder, error) {
	registryMu.RLock()
	factory, ok := registry[code]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnsupported
	}
	return factory(), nil
}

// Decompress is a convenience wrapper around Get + Decoder.Decompress.
func Decompress(code Code, compressed []byte, expectedLen int) ([]byte, error) {
	dec, err := Get(code)
	if err != nil {
		return nil, err
	}
	return dec.Decompress(compressed, expectedLen)
}

// String returns the canonical name of a compression code, for logging.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeZero:
		return "zero"
	case CodeRTIME:
		return "rtime"
	case CodeRubinMIPS:
		return "rubinmips"
	case CodeCopy:
		return "copy"
	case CodeDynrubin:
		return "dynrubin"
	case CodeZlib:
		return "zlib"
	case CodeLZO:
		return "lzo"
	case CodeLZMA:
		return "lzma"
	default:
		return "unknown"
	}
}
